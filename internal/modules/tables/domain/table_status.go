package domain

import (
	"strings"

	"restaurantBackoffice/internal/shared/apperr"
)

// TableStatus is the occupancy state shown for a table.
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusOccupied  TableStatus = "occupied"
)

var allowedTableStatuses = map[string]TableStatus{
	string(TableStatusAvailable): TableStatusAvailable,
	string(TableStatusReserved):  TableStatusReserved,
	string(TableStatusOccupied):  TableStatusOccupied,
}

// ParseTableStatus returns the canonical status for raw, ignoring case and
// surrounding spaces. Unrecognized values fail with apperr.ErrInvalidValue.
func ParseTableStatus(raw string) (TableStatus, error) {
	if status, ok := allowedTableStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status, nil
	}
	return "", apperr.Invalid("table status %q must be one of available, reserved, occupied", raw)
}
