package domain

import (
	"strings"

	"restaurantBackoffice/internal/shared/apperr"
)

// BookingStatus represents the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var allowedBookingStatuses = map[string]BookingStatus{
	string(BookingStatusConfirmed): BookingStatusConfirmed,
	string(BookingStatusCancelled): BookingStatusCancelled,
	string(BookingStatusCompleted): BookingStatusCompleted,
}

// ParseBookingStatus returns the canonical status for raw.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	if status, ok := allowedBookingStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status, nil
	}
	return "", apperr.Invalid("booking status %q must be one of confirmed, cancelled, completed", raw)
}
