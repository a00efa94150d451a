package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authuc "restaurantBackoffice/internal/modules/auth/application/usecase"
	customersinfra "restaurantBackoffice/internal/modules/customers/infrastructure"
	dashboarduc "restaurantBackoffice/internal/modules/dashboard/application/usecase"
	eventsuc "restaurantBackoffice/internal/modules/events/application/usecase"
	feedbackinfra "restaurantBackoffice/internal/modules/feedback/infrastructure"
	menuinfra "restaurantBackoffice/internal/modules/menu/infrastructure"
	ordersuc "restaurantBackoffice/internal/modules/orders/application/usecase"
	reservationsuc "restaurantBackoffice/internal/modules/reservations/application/usecase"
	staffinfra "restaurantBackoffice/internal/modules/staff/infrastructure"
	tablesinfra "restaurantBackoffice/internal/modules/tables/infrastructure"
	"restaurantBackoffice/internal/shared/apperr"
	"restaurantBackoffice/internal/shared/auth"
	"restaurantBackoffice/internal/shared/httputil"
)

var errInvalidBody = errors.New("invalid request body")

// Handler serves the back-office JSON API.
type Handler struct {
	auth         *authuc.AuthUseCase
	reservations *reservationsuc.ReservationManager
	pricing      *ordersuc.PricingEngine
	stats        *dashboarduc.StatsUseCase
	tables       *tablesinfra.Repository
	customers    *customersinfra.Repository
	menu         *menuinfra.Repository
	staff        *staffinfra.Repository
	feedback     *feedbackinfra.Repository
	events       *eventsuc.PublishUseCase
	errors       *httputil.ErrorMapper
}

// Deps groups the collaborators the API layer calls into.
type Deps struct {
	Auth         *authuc.AuthUseCase
	Reservations *reservationsuc.ReservationManager
	Pricing      *ordersuc.PricingEngine
	Stats        *dashboarduc.StatsUseCase
	Tables       *tablesinfra.Repository
	Customers    *customersinfra.Repository
	Menu         *menuinfra.Repository
	Staff        *staffinfra.Repository
	Feedback     *feedbackinfra.Repository
	Events       *eventsuc.PublishUseCase
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		auth:         d.Auth,
		reservations: d.Reservations,
		pricing:      d.Pricing,
		stats:        d.Stats,
		tables:       d.Tables,
		customers:    d.Customers,
		menu:         d.Menu,
		staff:        d.Staff,
		feedback:     d.Feedback,
		events:       d.Events,
		errors:       newErrorMapper(),
	}
}

func newErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithMapping(errInvalidBody, http.StatusBadRequest, "").
		WithMapping(apperr.ErrNotFound, http.StatusNotFound, "").
		WithMapping(apperr.ErrInvalidValue, http.StatusBadRequest, "").
		WithMapping(authuc.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials").
		WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "Access token required").
		WithMapping(auth.ErrInvalidToken, http.StatusForbidden, "Invalid or expired token")
}

// Register mounts every route on g. requireAuth guards the admin routes.
func (h *Handler) Register(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.GET("/healthz", h.health)
	g.POST("/auth/login", h.login)
	g.GET("/auth/me", h.me, requireAuth)

	g.GET("/tables", h.listTables)
	g.GET("/tables/:id", h.getTable)
	g.POST("/tables", h.createTable, requireAuth)
	g.PUT("/tables/:id", h.updateTable, requireAuth)
	g.PUT("/tables/:id/status", h.setTableStatus, requireAuth)
	g.DELETE("/tables/:id", h.deleteTable, requireAuth)

	g.GET("/bookings", h.listBookings, requireAuth)
	g.GET("/bookings/:id", h.getBooking, requireAuth)
	g.POST("/bookings", h.createBooking)
	g.PUT("/bookings/:id", h.updateBooking, requireAuth)
	g.DELETE("/bookings/:id", h.deleteBooking, requireAuth)

	g.GET("/customers", h.listCustomers, requireAuth)
	g.GET("/customers/:id", h.getCustomer, requireAuth)
	g.POST("/customers", h.createCustomer, requireAuth)
	g.PUT("/customers/:id", h.updateCustomer, requireAuth)

	g.GET("/menu", h.listMenu)
	g.GET("/menu/:id", h.getMenuItem)
	g.POST("/menu", h.createMenuItem, requireAuth)
	g.PUT("/menu/:id", h.updateMenuItem, requireAuth)
	g.DELETE("/menu/:id", h.deleteMenuItem, requireAuth)

	g.GET("/orders", h.listOrders, requireAuth)
	g.GET("/orders/:id", h.getOrder, requireAuth)
	g.POST("/orders", h.createOrder, requireAuth)
	g.PUT("/orders/:id", h.updateOrder, requireAuth)

	g.GET("/staff", h.listStaff, requireAuth)
	g.GET("/staff/:id", h.getStaffMember, requireAuth)
	g.POST("/staff", h.createStaffMember, requireAuth)
	g.PUT("/staff/:id", h.updateStaffMember, requireAuth)

	g.GET("/feedback", h.listFeedback, requireAuth)
	g.GET("/feedback/:id", h.getFeedback, requireAuth)
	g.POST("/feedback", h.createFeedback)
	g.PUT("/feedback/:id", h.updateFeedback, requireAuth)

	g.GET("/dashboard/stats", h.dashboardStats, requireAuth)
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respondError writes the mapped status with an {"error": message} body.
func (h *Handler) respondError(c echo.Context, err error) error {
	info := h.errors.Map(err)
	if info.Status >= http.StatusInternalServerError {
		attrs := []any{
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		}
		if claims, ok := claimsFrom(c); ok {
			attrs = append(attrs, slog.String("user", claims.Email))
		}
		slog.Error("request failed", attrs...)
	}
	return c.JSON(info.Status, errorBody(info.Message))
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func messageBody(message string) map[string]string {
	return map[string]string{"message": message}
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	return nil
}

// decodeForm reads a loosely typed JSON object.
func decodeForm(c echo.Context) (map[string]any, error) {
	raw := map[string]any{}
	if err := decodeJSON(c, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errInvalidBody
	}
	return raw, nil
}

func pathID(c echo.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
