package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	menu "restaurantBackoffice/internal/modules/menu/domain"
	"restaurantBackoffice/internal/modules/orders/domain"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/shared/apperr"
	"restaurantBackoffice/internal/shared/money"
)

// PricingWarning reports a line item that could not be priced.
type PricingWarning struct {
	MenuItemID string `json:"menuItemId"`
	Message    string `json:"message"`
}

// PricedOrder is a created order together with any pricing warnings.
type PricedOrder struct {
	Order    domain.Order
	Warnings []PricingWarning
}

// PricingEngine creates orders and freezes their totals at creation time.
type PricingEngine struct {
	store  docstore.Store
	strict bool
	now    func() time.Time
	newID  func() string
}

// NewPricingEngine builds an engine. When strict is set, a line item
// referencing an unknown menu item fails the order with a not-found error;
// otherwise it contributes zero and is reported as a warning.
func NewPricingEngine(store docstore.Store, strict bool) *PricingEngine {
	return &PricingEngine{store: store, strict: strict, now: time.Now, newID: docstore.NewID}
}

func (e *PricingEngine) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return docstore.Orders.List(ctx, e.store)
}

func (e *PricingEngine) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return docstore.Orders.Get(ctx, e.store, id)
}

func (e *PricingEngine) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (PricedOrder, error) {
	status, err := in.Validate()
	if err != nil {
		return PricedOrder{}, err
	}

	var result PricedOrder
	err = docstore.Update(ctx, e.store, func(doc *docstore.Document) error {
		total, warnings, err := e.price(doc, in.Items)
		if err != nil {
			return err
		}
		items := make([]domain.LineItem, len(in.Items))
		copy(items, in.Items)

		order := domain.Order{
			ID:        e.newID(),
			TableID:   in.TableID,
			Items:     items,
			Status:    status,
			Notes:     in.Notes,
			CreatedAt: docstore.Timestamp(e.now()),
			Total:     total,
		}
		docstore.Orders.Append(doc, order)
		result = PricedOrder{Order: order, Warnings: warnings}
		return nil
	})
	if err != nil {
		return PricedOrder{}, err
	}

	for _, w := range result.Warnings {
		slog.Warn("order priced without menu item",
			slog.String("orderId", result.Order.ID),
			slog.String("menuItemId", w.MenuItemID),
		)
	}
	return result, nil
}

// UpdateOrder applies patch without touching the stored total.
func (e *PricingEngine) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	return docstore.Orders.Modify(ctx, e.store, id, patch.Apply)
}

func (e *PricingEngine) price(doc *docstore.Document, items []domain.LineItem) (decimal.Decimal, []PricingWarning, error) {
	var warnings []PricingWarning
	amounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		menuItem, _, err := docstore.Menu.Find(doc, item.MenuItemID)
		if err != nil {
			if e.strict {
				return decimal.Zero, nil, fmt.Errorf("%w: menuItemId %s", err, item.MenuItemID)
			}
			warnings = append(warnings, PricingWarning{
				MenuItemID: item.MenuItemID,
				Message:    apperr.NotFound(docstore.Menu.Resource).Error(),
			})
			continue
		}
		amounts = append(amounts, lineAmount(menuItem, item.Quantity))
	}
	return money.Sum(amounts...), warnings, nil
}

func lineAmount(item menu.MenuItem, quantity int) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
