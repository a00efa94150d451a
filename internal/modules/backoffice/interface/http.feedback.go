package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	feedback "restaurantBackoffice/internal/modules/feedback/domain"
)

func (h *Handler) listFeedback(c echo.Context) error {
	list, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getFeedback(c echo.Context) error {
	entry, err := h.feedback.GetByID(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

// createFeedback serves the public feedback form; rating may be a string.
func (h *Handler) createFeedback(c echo.Context) error {
	raw, err := decodeForm(c)
	if err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	entry, err := h.feedback.Create(ctx, feedback.NormalizeCreateEntryInput(raw))
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityFeedback, entry.ID, entry)
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) updateFeedback(c echo.Context) error {
	var patch feedback.EntryPatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	entry, err := h.feedback.Update(ctx, pathID(c), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityFeedback, entry.ID, entry)
	return c.JSON(http.StatusOK, entry)
}
