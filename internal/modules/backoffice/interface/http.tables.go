package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
)

func (h *Handler) listTables(c echo.Context) error {
	list, err := h.tables.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getTable(c echo.Context) error {
	table, err := h.tables.GetByID(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) createTable(c echo.Context) error {
	var in tables.CreateTableInput
	if err := decodeJSON(c, &in); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	table, err := h.tables.Create(ctx, in)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityTables, table.ID, table)
	return c.JSON(http.StatusCreated, table)
}

// updateTable patches plain fields through the repository and routes a
// status change through the reservation manager.
func (h *Handler) updateTable(c echo.Context) error {
	var patch tables.TablePatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	status := patch.Status
	patch.Status = nil
	if status != nil {
		if _, err := tables.ParseTableStatus(*status); err != nil {
			return h.respondError(c, err)
		}
	}

	ctx := c.Request().Context()
	id := pathID(c)
	table, err := h.tables.Update(ctx, id, patch)
	if err != nil {
		return h.respondError(c, err)
	}
	if status != nil {
		if table, err = h.reservations.SetTableStatus(ctx, id, *status); err != nil {
			return h.respondError(c, err)
		}
	}
	h.events.Updated(ctx, events.EntityTables, table.ID, table)
	return c.JSON(http.StatusOK, table)
}

type tableStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setTableStatus(c echo.Context) error {
	var req tableStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	table, err := h.reservations.SetTableStatus(ctx, pathID(c), req.Status)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityTables, table.ID, table)
	return c.JSON(http.StatusOK, table)
}

func (h *Handler) deleteTable(c echo.Context) error {
	ctx := c.Request().Context()
	id := pathID(c)
	if err := h.tables.Delete(ctx, id); err != nil {
		return h.respondError(c, err)
	}
	h.events.Deleted(ctx, events.EntityTables, id)
	return c.JSON(http.StatusOK, messageBody("Table deleted"))
}
