package transport

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	orders "restaurantBackoffice/internal/modules/orders/domain"
)

// headerPricingWarnings carries the number of line items priced at zero
// because their menu item no longer exists.
const headerPricingWarnings = "X-Pricing-Warnings"

func (h *Handler) listOrders(c echo.Context) error {
	list, err := h.pricing.ListOrders(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getOrder(c echo.Context) error {
	order, err := h.pricing.GetOrder(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) createOrder(c echo.Context) error {
	var in orders.CreateOrderInput
	if err := decodeJSON(c, &in); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	result, err := h.pricing.CreateOrder(ctx, in)
	if err != nil {
		return h.respondError(c, err)
	}
	if n := len(result.Warnings); n > 0 {
		c.Response().Header().Set(headerPricingWarnings, strconv.Itoa(n))
	}
	h.events.Created(ctx, events.EntityOrders, result.Order.ID, result.Order)
	return c.JSON(http.StatusCreated, result.Order)
}

func (h *Handler) updateOrder(c echo.Context) error {
	var patch orders.OrderPatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	order, err := h.pricing.UpdateOrder(ctx, pathID(c), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityOrders, order.ID, order)
	return c.JSON(http.StatusOK, order)
}
