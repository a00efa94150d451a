package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	customers "restaurantBackoffice/internal/modules/customers/domain"
	events "restaurantBackoffice/internal/modules/events/domain"
)

func (h *Handler) listCustomers(c echo.Context) error {
	list, err := h.customers.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getCustomer(c echo.Context) error {
	customer, err := h.customers.GetByID(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *Handler) createCustomer(c echo.Context) error {
	var in customers.CreateCustomerInput
	if err := decodeJSON(c, &in); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	customer, err := h.customers.Create(ctx, in)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityCustomers, customer.ID, customer)
	return c.JSON(http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(c echo.Context) error {
	var patch customers.CustomerPatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	customer, err := h.customers.Update(ctx, pathID(c), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityCustomers, customer.ID, customer)
	return c.JSON(http.StatusOK, customer)
}
