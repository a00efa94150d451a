package usecase

import (
	"context"
	"log/slog"
	"time"

	"restaurantBackoffice/internal/modules/reservations/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
	"restaurantBackoffice/internal/platform/docstore"
)

// DeletedMessage confirms a removed booking.
const DeletedMessage = "Booking deleted"

// ReservationManager keeps table occupancy in step with the booking
// lifecycle. Every operation is one read-modify-write of the document.
//
// Tables carry no booking reference count: several confirmed bookings may
// point at the same table and the last booking touched decides its status.
type ReservationManager struct {
	store docstore.Store
	now   func() time.Time
	newID func() string
}

func NewReservationManager(store docstore.Store) *ReservationManager {
	return &ReservationManager{store: store, now: time.Now, newID: docstore.NewID}
}

func (m *ReservationManager) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return docstore.Bookings.List(ctx, m.store)
}

func (m *ReservationManager) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	return docstore.Bookings.Get(ctx, m.store, id)
}

// CreateBooking confirms a booking for an existing table and marks the
// table reserved.
func (m *ReservationManager) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.Booking, error) {
	var created domain.Booking
	err := docstore.Update(ctx, m.store, func(doc *docstore.Document) error {
		table, idx, err := docstore.Tables.Find(doc, in.TableID)
		if err != nil {
			return err
		}

		number := table.Number
		created = domain.Booking{
			ID:              m.newID(),
			CustomerName:    in.CustomerName,
			CustomerEmail:   in.CustomerEmail,
			CustomerPhone:   in.CustomerPhone,
			TableID:         table.ID,
			TableNumber:     &number,
			Date:            in.Date,
			Time:            in.Time,
			Guests:          in.Guests,
			SpecialRequests: in.SpecialRequests,
			Status:          domain.BookingStatusConfirmed,
			CreatedAt:       docstore.Timestamp(m.now()),
		}
		docstore.Bookings.Append(doc, created)

		table.Status = tables.TableStatusReserved
		docstore.Tables.Replace(doc, idx, table)
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	slog.Debug("booking created", slog.String("bookingId", created.ID), slog.String("tableId", created.TableID))
	return created, nil
}

// UpdateBooking applies patch to the booking. Moving it to another table
// frees the old table and reserves the new one; tables that no longer
// exist are skipped.
func (m *ReservationManager) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (domain.Booking, error) {
	var updated domain.Booking
	err := docstore.Update(ctx, m.store, func(doc *docstore.Document) error {
		current, idx, err := docstore.Bookings.Find(doc, id)
		if err != nil {
			return err
		}

		next, err := patch.Apply(current)
		if err != nil {
			return err
		}

		if patch.ReassignsTable(current.TableID) {
			setTableStatus(doc, current.TableID, tables.TableStatusAvailable)
			next.TableNumber = nil
			if table, ok := setTableStatus(doc, next.TableID, tables.TableStatusReserved); ok {
				number := table.Number
				next.TableNumber = &number
			}
		}

		docstore.Bookings.Replace(doc, idx, next)
		updated = next
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}
	return updated, nil
}

// DeleteBooking removes the booking and frees its table.
func (m *ReservationManager) DeleteBooking(ctx context.Context, id string) (string, error) {
	err := docstore.Update(ctx, m.store, func(doc *docstore.Document) error {
		booking, idx, err := docstore.Bookings.Find(doc, id)
		if err != nil {
			return err
		}
		setTableStatus(doc, booking.TableID, tables.TableStatusAvailable)
		docstore.Bookings.RemoveAt(doc, idx)
		return nil
	})
	if err != nil {
		return "", err
	}
	return DeletedMessage, nil
}

// SetTableStatus overrides a table's status regardless of its bookings.
func (m *ReservationManager) SetTableStatus(ctx context.Context, tableID, status string) (tables.Table, error) {
	parsed, err := tables.ParseTableStatus(status)
	if err != nil {
		return tables.Table{}, err
	}
	return docstore.Tables.Modify(ctx, m.store, tableID, func(t tables.Table) (tables.Table, error) {
		t.Status = parsed
		return t, nil
	})
}

func setTableStatus(doc *docstore.Document, tableID string, status tables.TableStatus) (tables.Table, bool) {
	table, idx, err := docstore.Tables.Find(doc, tableID)
	if err != nil {
		return tables.Table{}, false
	}
	table.Status = status
	docstore.Tables.Replace(doc, idx, table)
	return table, true
}
