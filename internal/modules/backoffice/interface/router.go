package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"restaurantBackoffice/internal/shared/logging"
)

// NewServer builds the echo instance serving the API under both /api and
// the root path.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = jsonErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(logging.RequestLogger())

	requireAuth := h.RequireAuth()
	for _, prefix := range []string{"/api", ""} {
		h.Register(e.Group(prefix), requireAuth)
	}
	return e
}

// jsonErrorHandler renders errors that escape handlers (unknown routes,
// recovered panics) with the same {"error": message} body.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		slog.Error("unhandled error", slog.String("path", c.Path()), slog.Any("error", err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorBody(message))
	}
	if err != nil {
		slog.Warn("write error response", slog.Any("error", err))
	}
}
