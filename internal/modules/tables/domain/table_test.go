package domain

import (
	"errors"
	"testing"

	"restaurantBackoffice/internal/shared/apperr"
)

func TestCreateTableInputBuild(t *testing.T) {
	table, err := CreateTableInput{Number: 9, Capacity: 4, Location: "Terrace"}.Build("t-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.ID != "t-9" || table.Status != TableStatusAvailable || table.Location != "Terrace" {
		t.Fatalf("unexpected table: %+v", table)
	}

	if _, err := (CreateTableInput{Number: 0, Capacity: 4}).Build("x"); !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected invalid number error, got %v", err)
	}
	if _, err := (CreateTableInput{Number: 1, Capacity: -2}).Build("x"); !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected invalid capacity error, got %v", err)
	}
}

func TestTablePatchApply(t *testing.T) {
	original := Table{ID: "1", Number: 1, Capacity: 2, Status: TableStatusAvailable, Location: "Window"}
	capacity := 6
	status := "occupied"

	updated, err := TablePatch{Capacity: &capacity, Status: &status}.Apply(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Capacity != 6 || updated.Status != TableStatusOccupied {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if updated.Location != "Window" || updated.Number != 1 {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if original.Capacity != 2 {
		t.Fatal("original table must not be mutated")
	}

	bad := "broken"
	if _, err := (TablePatch{Status: &bad}).Apply(original); !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
