package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	authuc "restaurantBackoffice/internal/modules/auth/application/usecase"
	customersinfra "restaurantBackoffice/internal/modules/customers/infrastructure"
	dashboarduc "restaurantBackoffice/internal/modules/dashboard/application/usecase"
	eventsuc "restaurantBackoffice/internal/modules/events/application/usecase"
	events "restaurantBackoffice/internal/modules/events/domain"
	feedbackinfra "restaurantBackoffice/internal/modules/feedback/infrastructure"
	menuinfra "restaurantBackoffice/internal/modules/menu/infrastructure"
	ordersuc "restaurantBackoffice/internal/modules/orders/application/usecase"
	reservationsuc "restaurantBackoffice/internal/modules/reservations/application/usecase"
	staffinfra "restaurantBackoffice/internal/modules/staff/infrastructure"
	tablesinfra "restaurantBackoffice/internal/modules/tables/infrastructure"
	usersinfra "restaurantBackoffice/internal/modules/users/infrastructure"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/platform/seed"
	"restaurantBackoffice/internal/shared/auth"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, msg *events.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, msg.Topic)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testServer struct {
	t         *testing.T
	handler   http.Handler
	store     docstore.Store
	publisher *recordingPublisher
	token     string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	data, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.Apply(ctx, store, data, auth.HashPassword)
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	h := NewHandler(Deps{
		Auth:         authuc.NewAuthUseCase(usersinfra.NewRepository(store), jwtManager),
		Reservations: reservationsuc.NewReservationManager(store),
		Pricing:      ordersuc.NewPricingEngine(store, false),
		Stats:        dashboarduc.NewStatsUseCase(store),
		Tables:       tablesinfra.NewRepository(store),
		Customers:    customersinfra.NewRepository(store),
		Menu:         menuinfra.NewRepository(store),
		Staff:        staffinfra.NewRepository(store),
		Feedback:     feedbackinfra.NewRepository(store),
		Events:       eventsuc.NewPublishUseCase(publisher),
	})
	token, err := jwtManager.Issue("1", "admin@restaurant.com", "admin")
	require.NoError(t, err)

	return &testServer{t: t, handler: NewServer(h), store: store, publisher: publisher, token: token}
}

func (s *testServer) do(method, path, body string, authed bool) (*httptest.ResponseRecorder, map[string]any) {
	s.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/api/auth/login", `{"email":"admin@restaurant.com","password":"admin123"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	require.Equal(t, "admin", user["role"])
	require.NotContains(t, user, "password")
	require.NotContains(t, rec.Body.String(), "$2a$")

	rec, body = s.do(http.MethodPost, "/auth/login", `{"email":"admin@restaurant.com","password":"wrong"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", body["error"])

	rec, _ = s.do(http.MethodPost, "/auth/login", `{"email":`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthGate(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodGet, "/api/bookings", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Access token required", body["error"])

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusForbidden, rr.Code)
	require.JSONEq(t, `{"error":"Invalid or expired token"}`, rr.Body.String())

	rec, _ = s.do(http.MethodGet, "/api/bookings", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestAuthMe(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodGet, "/api/auth/me", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{"id": "1", "email": "admin@restaurant.com", "role": "admin"}, body)

	rec, body = s.do(http.MethodGet, "/auth/me", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Access token required", body["error"])
}

func TestPublicBookingReservesTable(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/api/bookings", `{
		"customerName":"Ann","customerEmail":"ann@example.com","customerPhone":"555",
		"tableId":"3","date":"2025-03-14","time":"19:00","guests":"4"
	}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(4), body["guests"])
	require.Equal(t, float64(3), body["tableNumber"])
	require.Equal(t, "confirmed", body["status"])
	require.Equal(t, "", body["specialRequests"])
	id := body["id"].(string)

	_, table := s.do(http.MethodGet, "/api/tables/3", "", false)
	require.Equal(t, "reserved", table["status"])

	rec, body = s.do(http.MethodDelete, "/api/bookings/"+id, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Booking deleted", body["message"])

	_, table = s.do(http.MethodGet, "/api/tables/3", "", false)
	require.Equal(t, "available", table["status"])

	require.Equal(t, []string{"bookings.created", "bookings.deleted"}, s.publisher.topics)
}

func TestBookingErrors(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/api/bookings", `{"tableId":"99","guests":2}`, false)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Table not found", body["error"])

	rec, body = s.do(http.MethodPut, "/api/bookings/missing", `{"time":"20:00"}`, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Booking not found", body["error"])

	rec, _ = s.do(http.MethodPost, "/api/bookings", `[1,2]`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTableStatus(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPut, "/api/tables/1", `{"status":"broken"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "broken")

	rec, body = s.do(http.MethodPut, "/api/tables/1", `{"status":"occupied","location":"Terrace"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "occupied", body["status"])
	require.Equal(t, "Terrace", body["location"])

	rec, _ = s.do(http.MethodPut, "/api/tables/42", `{"status":"available"}`, true)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = s.do(http.MethodPut, "/api/tables/2/status", `{"status":"reserved"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "reserved", body["status"])
}

func TestTableNumbersStayUnique(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/api/tables", `{"number":3,"capacity":2}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "already in use")

	rec, body = s.do(http.MethodPut, "/api/tables/1", `{"number":2}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, body["error"], "already in use")

	rec, body = s.do(http.MethodPost, "/api/tables", `{"number":9,"capacity":2}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.EqualValues(t, 9, body["number"])

	rec, body = s.do(http.MethodGet, "/api/tables/1", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, body["number"])
}

func TestOrders(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodPost, "/api/orders", `{"tableId":"1","items":[]}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body := s.do(http.MethodPost, "/api/orders", `{"tableId":"1","items":[{"menuItemId":"1","quantity":2}]}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 25.98, body["total"])
	require.Equal(t, "pending", body["status"])
	id := body["id"].(string)

	rec, _ = s.do(http.MethodPost, "/api/orders", `{"tableId":"1","items":[{"menuItemId":"ghost","quantity":1}]}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "1", rec.Header().Get(headerPricingWarnings))

	rec, body = s.do(http.MethodPut, "/api/orders/"+id, `{"status":"served"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "served", body["status"])
	require.Equal(t, 25.98, body["total"])

	_, stats := s.do(http.MethodGet, "/api/dashboard/stats", "", true)
	require.Equal(t, float64(2), stats["totalOrders"])
	require.Equal(t, float64(8), stats["totalTables"])
	require.Equal(t, float64(5), stats["totalMenuItems"])
	require.Equal(t, 25.98, stats["totalRevenue"])
}

func TestMenuAndStaffDefaults(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/menu", `{"name":"Soup","category":"Starter","price":4.5}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, body["available"])
	id := body["id"].(string)

	rec, body = s.do(http.MethodGet, "/menu/"+id, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Soup", body["name"])

	rec, body = s.do(http.MethodDelete, "/menu/"+id, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Menu item deleted", body["message"])

	rec, body = s.do(http.MethodDelete, "/menu/"+id, "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Menu item not found", body["error"])

	rec, body = s.do(http.MethodPost, "/staff", `{"name":"Sam","role":"Host"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "active", body["status"])

	rec, body = s.do(http.MethodPut, "/staff/nope", `{"name":"X"}`, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Staff member not found", body["error"])
}

func TestCustomersAndFeedback(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodPost, "/api/customers", `{"name":"Ann","email":"ann@example.com"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, body["createdAt"])
	id := body["id"].(string)

	rec, body = s.do(http.MethodPut, "/api/customers/"+id, `{"phone":"555"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "555", body["phone"])
	require.Equal(t, "Ann", body["name"])

	rec, body = s.do(http.MethodPost, "/api/feedback", `{"customerName":"Bo","rating":"5","comment":"Great"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(5), body["rating"])

	rec, _ = s.do(http.MethodGet, "/api/feedback", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRouteAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(http.MethodGet, "/api/nope", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, body["error"])

	rec, body = s.do(http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", body["status"])
}
