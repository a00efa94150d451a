package docstore

import (
	"encoding/json"
	"fmt"

	customers "restaurantBackoffice/internal/modules/customers/domain"
	feedback "restaurantBackoffice/internal/modules/feedback/domain"
	menu "restaurantBackoffice/internal/modules/menu/domain"
	orders "restaurantBackoffice/internal/modules/orders/domain"
	reservations "restaurantBackoffice/internal/modules/reservations/domain"
	staff "restaurantBackoffice/internal/modules/staff/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
	users "restaurantBackoffice/internal/modules/users/domain"
)

// Document is the whole persisted state. Every operation reads it, mutates
// it in memory and writes it back.
type Document struct {
	Users     []users.User           `json:"users"`
	Tables    []tables.Table         `json:"tables"`
	Bookings  []reservations.Booking `json:"bookings"`
	Customers []customers.Customer   `json:"customers"`
	Menu      []menu.MenuItem        `json:"menu"`
	Orders    []orders.Order         `json:"orders"`
	Staff     []staff.Member         `json:"staff"`
	Feedback  []feedback.Entry       `json:"feedback"`
}

// NewDocument returns a document with every collection empty.
func NewDocument() *Document {
	doc := &Document{}
	doc.normalize()
	return doc
}

// normalize replaces nil collections so they encode as [] rather than null.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []users.User{}
	}
	if d.Tables == nil {
		d.Tables = []tables.Table{}
	}
	if d.Bookings == nil {
		d.Bookings = []reservations.Booking{}
	}
	if d.Customers == nil {
		d.Customers = []customers.Customer{}
	}
	if d.Menu == nil {
		d.Menu = []menu.MenuItem{}
	}
	if d.Orders == nil {
		d.Orders = []orders.Order{}
	}
	if d.Staff == nil {
		d.Staff = []staff.Member{}
	}
	if d.Feedback == nil {
		d.Feedback = []feedback.Entry{}
	}
}

func decodeDocument(raw []byte) (*Document, error) {
	doc := &Document{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	}
	doc.normalize()
	return doc, nil
}

func encodeDocument(doc *Document) ([]byte, error) {
	if doc == nil {
		doc = NewDocument()
	}
	doc.normalize()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}
