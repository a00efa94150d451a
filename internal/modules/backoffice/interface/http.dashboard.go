package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) dashboardStats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
