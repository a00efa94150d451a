package docstore

import (
	customers "restaurantBackoffice/internal/modules/customers/domain"
	feedback "restaurantBackoffice/internal/modules/feedback/domain"
	menu "restaurantBackoffice/internal/modules/menu/domain"
	orders "restaurantBackoffice/internal/modules/orders/domain"
	reservations "restaurantBackoffice/internal/modules/reservations/domain"
	staff "restaurantBackoffice/internal/modules/staff/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
	users "restaurantBackoffice/internal/modules/users/domain"
	"restaurantBackoffice/internal/shared/apperr"
)

// Collection gives typed, id-based access to one slice of a Document.
type Collection[T any] struct {
	// Resource names the record kind in error messages ("Booking not found").
	Resource string
	items    func(*Document) *[]T
	id       func(T) string
}

// All returns a copy of the collection in insertion order.
func (c Collection[T]) All(doc *Document) []T {
	src := *c.items(doc)
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Find returns the record with the given id and its index.
func (c Collection[T]) Find(doc *Document, id string) (T, int, error) {
	for i, item := range *c.items(doc) {
		if c.id(item) == id {
			return item, i, nil
		}
	}
	var zero T
	return zero, -1, apperr.NotFound(c.Resource)
}

// FindBy returns the first record matching pred.
func (c Collection[T]) FindBy(doc *Document, pred func(T) bool) (T, bool) {
	for _, item := range *c.items(doc) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c Collection[T]) Append(doc *Document, item T) {
	items := c.items(doc)
	*items = append(*items, item)
}

// Replace overwrites the record at index i.
func (c Collection[T]) Replace(doc *Document, i int, item T) {
	(*c.items(doc))[i] = item
}

// RemoveAt deletes the record at index i, preserving order.
func (c Collection[T]) RemoveAt(doc *Document, i int) {
	items := c.items(doc)
	*items = append((*items)[:i], (*items)[i+1:]...)
}

var (
	Users = Collection[users.User]{
		Resource: "User",
		items:    func(d *Document) *[]users.User { return &d.Users },
		id:       func(u users.User) string { return u.ID },
	}
	Tables = Collection[tables.Table]{
		Resource: "Table",
		items:    func(d *Document) *[]tables.Table { return &d.Tables },
		id:       func(t tables.Table) string { return t.ID },
	}
	Bookings = Collection[reservations.Booking]{
		Resource: "Booking",
		items:    func(d *Document) *[]reservations.Booking { return &d.Bookings },
		id:       func(b reservations.Booking) string { return b.ID },
	}
	Customers = Collection[customers.Customer]{
		Resource: "Customer",
		items:    func(d *Document) *[]customers.Customer { return &d.Customers },
		id:       func(c customers.Customer) string { return c.ID },
	}
	Menu = Collection[menu.MenuItem]{
		Resource: "Menu item",
		items:    func(d *Document) *[]menu.MenuItem { return &d.Menu },
		id:       func(m menu.MenuItem) string { return m.ID },
	}
	Orders = Collection[orders.Order]{
		Resource: "Order",
		items:    func(d *Document) *[]orders.Order { return &d.Orders },
		id:       func(o orders.Order) string { return o.ID },
	}
	Staff = Collection[staff.Member]{
		Resource: "Staff member",
		items:    func(d *Document) *[]staff.Member { return &d.Staff },
		id:       func(m staff.Member) string { return m.ID },
	}
	Feedback = Collection[feedback.Entry]{
		Resource: "Feedback",
		items:    func(d *Document) *[]feedback.Entry { return &d.Feedback },
		id:       func(e feedback.Entry) string { return e.ID },
	}
)
