package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	events "restaurantBackoffice/internal/modules/events/domain"
	staff "restaurantBackoffice/internal/modules/staff/domain"
)

func (h *Handler) listStaff(c echo.Context) error {
	list, err := h.staff.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) getStaffMember(c echo.Context) error {
	member, err := h.staff.GetByID(c.Request().Context(), pathID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) createStaffMember(c echo.Context) error {
	var in staff.CreateMemberInput
	if err := decodeJSON(c, &in); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	member, err := h.staff.Create(ctx, in)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Created(ctx, events.EntityStaff, member.ID, member)
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) updateStaffMember(c echo.Context) error {
	var patch staff.MemberPatch
	if err := decodeJSON(c, &patch); err != nil {
		return h.respondError(c, err)
	}
	ctx := c.Request().Context()
	member, err := h.staff.Update(ctx, pathID(c), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	h.events.Updated(ctx, events.EntityStaff, member.ID, member)
	return c.JSON(http.StatusOK, member)
}
