package domain

import "restaurantBackoffice/internal/shared/normalization"

// Booking is a table reservation made by a guest.
type Booking struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	TableID         string        `json:"tableId"`
	TableNumber     *int          `json:"tableNumber,omitempty"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"specialRequests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       string        `json:"createdAt"`
}

// CreateBookingInput carries the guest-supplied booking fields.
type CreateBookingInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	TableID         string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// NormalizeCreateBookingInput builds a CreateBookingInput from a loosely
// typed form payload. Numeric fields may arrive as strings.
func NormalizeCreateBookingInput(raw map[string]any) CreateBookingInput {
	return CreateBookingInput{
		CustomerName:    normalization.AsString(raw["customerName"]),
		CustomerEmail:   normalization.AsString(raw["customerEmail"]),
		CustomerPhone:   normalization.AsString(raw["customerPhone"]),
		TableID:         normalization.AsIDString(raw["tableId"]),
		Date:            normalization.AsString(raw["date"]),
		Time:            normalization.AsString(raw["time"]),
		Guests:          normalization.AsInt(raw["guests"]),
		SpecialRequests: normalization.AsString(raw["specialRequests"]),
	}
}

// BookingPatch lists the booking fields an administrator may change.
type BookingPatch struct {
	CustomerName    *string `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone"`
	TableID         *string `json:"tableId"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Guests          *int    `json:"guests"`
	SpecialRequests *string `json:"specialRequests"`
	Status          *string `json:"status"`
}

// ReassignsTable reports whether the patch moves the booking off current.
func (p BookingPatch) ReassignsTable(current string) bool {
	return p.TableID != nil && *p.TableID != "" && *p.TableID != current
}

// Apply copies every set field onto b. Table reassignment side effects are
// handled by the caller.
func (p BookingPatch) Apply(b Booking) (Booking, error) {
	if p.Status != nil {
		status, err := ParseBookingStatus(*p.Status)
		if err != nil {
			return Booking{}, err
		}
		b.Status = status
	}
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		b.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		b.CustomerPhone = *p.CustomerPhone
	}
	if p.TableID != nil && *p.TableID != "" {
		b.TableID = *p.TableID
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Time != nil {
		b.Time = *p.Time
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.SpecialRequests != nil {
		b.SpecialRequests = *p.SpecialRequests
	}
	return b, nil
}

// NormalizeBookingPatch builds a patch from a loosely typed payload. Only
// keys present with a non-null value are set.
func NormalizeBookingPatch(raw map[string]any) BookingPatch {
	str := func(key string) *string {
		v, ok := raw[key]
		if !ok || v == nil {
			return nil
		}
		s := normalization.AsString(v)
		return &s
	}
	var patch BookingPatch
	patch.CustomerName = str("customerName")
	patch.CustomerEmail = str("customerEmail")
	patch.CustomerPhone = str("customerPhone")
	patch.Date = str("date")
	patch.Time = str("time")
	patch.SpecialRequests = str("specialRequests")
	patch.Status = str("status")
	if v, ok := raw["tableId"]; ok && v != nil {
		id := normalization.AsIDString(v)
		patch.TableID = &id
	}
	if v, ok := raw["guests"]; ok && v != nil {
		guests := normalization.AsInt(v)
		patch.Guests = &guests
	}
	return patch
}
