package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"restaurantBackoffice/internal/shared/apperr"
)

// LineItem is one menu item and the quantity ordered.
type LineItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// Order is a table's order. Total is priced once at creation and never
// recomputed afterwards.
type Order struct {
	ID        string          `json:"id"`
	TableID   string          `json:"tableId"`
	Items     []LineItem      `json:"items"`
	Status    OrderStatus     `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt string          `json:"createdAt"`
	Total     decimal.Decimal `json:"total"`
}

type CreateOrderInput struct {
	TableID string     `json:"tableId"`
	Items   []LineItem `json:"items"`
	Status  *string    `json:"status"`
	Notes   string     `json:"notes"`
}

// Validate checks the line items and resolves the initial status, which
// defaults to pending.
func (in CreateOrderInput) Validate() (OrderStatus, error) {
	if len(in.Items) == 0 {
		return "", apperr.Invalid("order must contain at least one item")
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.MenuItemID) == "" {
			return "", apperr.Invalid("item %d is missing menuItemId", i)
		}
		if item.Quantity <= 0 {
			return "", apperr.Invalid("item %d quantity must be a positive integer", i)
		}
	}
	if in.Status == nil || strings.TrimSpace(*in.Status) == "" {
		return OrderStatusPending, nil
	}
	return ParseOrderStatus(*in.Status)
}

// OrderPatch lists the mutable order fields. Items are deliberately absent:
// the total is a creation-time snapshot.
type OrderPatch struct {
	TableID *string `json:"tableId"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}

func (p OrderPatch) Apply(o Order) (Order, error) {
	if p.Status != nil {
		status, err := ParseOrderStatus(*p.Status)
		if err != nil {
			return Order{}, err
		}
		o.Status = status
	}
	if p.TableID != nil {
		o.TableID = *p.TableID
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	return o, nil
}
