package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	reservations "restaurantBackoffice/internal/modules/reservations/domain"
)

func (h *Handler) listBookings(c echo.Context) error {
	list, err := h.reservations.ListBookings(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getBooking(c echo.Context) error {
	booking, err := h.reservations.GetBooking(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// createBooking serves the public booking form, whose numeric fields may
// arrive as strings.
func (h *Handler) createBooking(c echo.Context) error {
	raw, err := decodeForm(c)
	if err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	booking, err := h.reservations.CreateBooking(ctx, reservations.NormalizeCreateBookingInput(raw))
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityBookings, booking.ID, booking)
	return c.JSON(http.StatusCreated, booking)
}

func (h *Handler) updateBooking(c echo.Context) error {
	raw, err := decodeForm(c)
	if err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	booking, err := h.reservations.UpdateBooking(ctx, pathID(c), reservations.NormalizeBookingPatch(raw))
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityBookings, booking.ID, booking)
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) deleteBooking(c echo.Context) error {
	ctx := c.Request().Context()
	id := pathID(c)
	msg, err := h.reservations.DeleteBooking(ctx, id)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Deleted(ctx, events.EntityBookings, id)
	return c.JSON(http.StatusOK, messageBody(msg))
}
