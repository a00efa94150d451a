package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	menu "restaurantBackoffice/internal/modules/menu/domain"
)

func (h *Handler) listMenu(c echo.Context) error {
	list, err := h.menu.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getMenuItem(c echo.Context) error {
	item, err := h.menu.GetByID(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) createMenuItem(c echo.Context) error {
	var in menu.CreateMenuItemInput
	if err := decodeJSON(c, &in); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	item, err := h.menu.Create(ctx, in)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityMenu, item.ID, item)
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(c echo.Context) error {
	var patch menu.MenuItemPatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	item, err := h.menu.Update(ctx, pathID(c), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityMenu, item.ID, item)
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	id := pathID(c)
	if err := h.menu.Delete(ctx, id); err != nil {
		return h.respondError(c, err)
	}
	h.events.Deleted(ctx, events.EntityMenu, id)
	return c.JSON(http.StatusOK, messageBody("Menu item deleted"))
}
