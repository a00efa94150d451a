package domain

import "restaurantBackoffice/internal/shared/apperr"

// Table represents a seating resource in the dining room.
type Table struct {
	ID       string      `json:"id"`
	Number   int         `json:"number"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
	Location string      `json:"location"`
}

// CreateTableInput carries the fields accepted when adding a table.
type CreateTableInput struct {
	Number   int     `json:"number"`
	Capacity int     `json:"capacity"`
	Status   *string `json:"status"`
	Location string  `json:"location"`
}

// Build validates the input and returns a table with the given id.
func (in CreateTableInput) Build(id string) (Table, error) {
	if in.Number <= 0 {
		return Table{}, apperr.Invalid("table number must be a positive integer")
	}
	if in.Capacity <= 0 {
		return Table{}, apperr.Invalid("table capacity must be a positive integer")
	}
	status := TableStatusAvailable
	if in.Status != nil {
		parsed, err := ParseTableStatus(*in.Status)
		if err != nil {
			return Table{}, err
		}
		status = parsed
	}
	return Table{ID: id, Number: in.Number, Capacity: in.Capacity, Status: status, Location: in.Location}, nil
}

// TablePatch lists the table fields that can be changed; nil means unchanged.
type TablePatch struct {
	Number   *int    `json:"number"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
	Location *string `json:"location"`
}

// Apply returns t with the patch applied, validating every set field.
func (p TablePatch) Apply(t Table) (Table, error) {
	if p.Number != nil {
		if *p.Number <= 0 {
			return Table{}, apperr.Invalid("table number must be a positive integer")
		}
		t.Number = *p.Number
	}
	if p.Capacity != nil {
		if *p.Capacity <= 0 {
			return Table{}, apperr.Invalid("table capacity must be a positive integer")
		}
		t.Capacity = *p.Capacity
	}
	if p.Status != nil {
		status, err := ParseTableStatus(*p.Status)
		if err != nil {
			return Table{}, err
		}
		t.Status = status
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	return t, nil
}
