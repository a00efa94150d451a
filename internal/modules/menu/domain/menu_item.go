package domain

import (
	"github.com/shopspring/decimal"

	"restaurantBackoffice/internal/shared/apperr"
	"restaurantBackoffice/internal/shared/money"
)

// MenuItem is a dish or drink that orders can reference.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
}

type CreateMenuItemInput struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Available   *bool           `json:"available"`
}

// Build validates the input; Available defaults to true when omitted.
func (in CreateMenuItemInput) Build(id string) (MenuItem, error) {
	if in.Price.IsNegative() {
		return MenuItem{}, apperr.Invalid("menu item price must not be negative")
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return MenuItem{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Price:       money.Round(in.Price),
		Description: in.Description,
		Available:   available,
	}, nil
}

type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Available   *bool            `json:"available"`
}

func (p MenuItemPatch) Apply(m MenuItem) (MenuItem, error) {
	if p.Price != nil {
		if p.Price.IsNegative() {
			return MenuItem{}, apperr.Invalid("menu item price must not be negative")
		}
		m.Price = money.Round(*p.Price)
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Available != nil {
		m.Available = *p.Available
	}
	return m, nil
}
