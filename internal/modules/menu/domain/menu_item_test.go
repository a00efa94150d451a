package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"restaurantBackoffice/internal/shared/apperr"
)

func TestCreateMenuItemInputDefaultsAvailable(t *testing.T) {
	var input CreateMenuItemInput
	if err := json.Unmarshal([]byte(`{"name":"Soup","category":"Starter","price":"4.5"}`), &input); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	item, err := input.Build("m-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.Available {
		t.Fatal("expected available to default to true")
	}
	if !item.Price.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("unexpected price: %s", item.Price)
	}

	unavailable := false
	item, err = CreateMenuItemInput{Name: "Soup", Available: &unavailable}.Build("m-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Available {
		t.Fatal("explicit false must be kept")
	}
}

func TestCreateMenuItemInputRejectsNegativePrice(t *testing.T) {
	_, err := CreateMenuItemInput{Name: "Refund", Price: decimal.NewFromInt(-1)}.Build("m")
	if !errors.Is(err, apperr.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestMenuItemJSONPriceNumber(t *testing.T) {
	var item MenuItem
	if err := json.Unmarshal([]byte(`{"id":"1","name":"Margherita Pizza","price":12.99,"available":true}`), &item); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	raw, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded["price"] != 12.99 {
		t.Fatalf("expected numeric price, got %#v", decoded["price"])
	}
}

func TestMenuItemPatchApply(t *testing.T) {
	original := MenuItem{ID: "1", Name: "Cake", Price: decimal.RequireFromString("6.99"), Available: true}
	price := decimal.RequireFromString("7.499")
	off := false

	updated, err := MenuItemPatch{Price: &price, Available: &off}.Apply(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Price.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("unexpected price: %s", updated.Price)
	}
	if updated.Available || updated.Name != "Cake" {
		t.Fatalf("unexpected item: %+v", updated)
	}
}
