package domain

import (
	"errors"
	"testing"

	"restaurantBackoffice/internal/shared/apperr"
)

func TestNormalizeCreateBookingInput(t *testing.T) {
	raw := map[string]any{
		"customerName":  " Ana ",
		"customerEmail": "ana@example.com",
		"tableId":       float64(3),
		"date":          "2024-01-01",
		"time":          "19:30",
		"guests":        "4",
	}

	input := NormalizeCreateBookingInput(raw)
	if input.CustomerName != "Ana" {
		t.Fatalf("unexpected name: %q", input.CustomerName)
	}
	if input.TableID != "3" {
		t.Fatalf("unexpected table id: %q", input.TableID)
	}
	if input.Guests != 4 {
		t.Fatalf("unexpected guests: %d", input.Guests)
	}
	if input.SpecialRequests != "" {
		t.Fatalf("special requests should default to empty, got %q", input.SpecialRequests)
	}
}

func TestParseBookingStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"confirmed":   BookingStatusConfirmed,
		" Cancelled ": BookingStatusCancelled,
		"COMPLETED":   BookingStatusCompleted,
	}
	for input, expected := range cases {
		status, err := ParseBookingStatus(input)
		if err != nil {
			t.Fatalf("ParseBookingStatus(%q) unexpected error: %v", input, err)
		}
		if status != expected {
			t.Fatalf("ParseBookingStatus(%q) expected %q got %q", input, expected, status)
		}
	}
	if _, err := ParseBookingStatus("pending"); !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestBookingPatchApply(t *testing.T) {
	original := Booking{ID: "b-1", CustomerName: "Ana", TableID: "1", Guests: 2, Status: BookingStatusConfirmed}
	guests := 5
	status := "completed"
	requests := "window seat"

	updated, err := BookingPatch{Guests: &guests, Status: &status, SpecialRequests: &requests}.Apply(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Guests != 5 || updated.Status != BookingStatusCompleted || updated.SpecialRequests != "window seat" {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if updated.CustomerName != "Ana" || updated.TableID != "1" {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}

	bad := "lost"
	if _, err := (BookingPatch{Status: &bad}).Apply(original); !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestBookingPatchReassignsTable(t *testing.T) {
	same := "1"
	other := "2"
	empty := ""
	cases := []struct {
		name     string
		patch    BookingPatch
		expected bool
	}{
		{name: "no table", patch: BookingPatch{}, expected: false},
		{name: "same table", patch: BookingPatch{TableID: &same}, expected: false},
		{name: "empty table", patch: BookingPatch{TableID: &empty}, expected: false},
		{name: "other table", patch: BookingPatch{TableID: &other}, expected: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.patch.ReassignsTable("1"); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestNormalizeBookingPatch(t *testing.T) {
	patch := NormalizeBookingPatch(map[string]any{
		"guests":  "6",
		"tableId": float64(4),
		"time":    "20:30",
		"notes":   "ignored",
		"date":    nil,
	})

	if patch.Guests == nil || *patch.Guests != 6 {
		t.Fatalf("unexpected guests: %v", patch.Guests)
	}
	if patch.TableID == nil || *patch.TableID != "4" {
		t.Fatalf("unexpected tableId: %v", patch.TableID)
	}
	if patch.Time == nil || *patch.Time != "20:30" {
		t.Fatalf("unexpected time: %v", patch.Time)
	}
	if patch.Date != nil || patch.Status != nil || patch.CustomerName != nil {
		t.Fatalf("absent fields must stay nil: %+v", patch)
	}
}
