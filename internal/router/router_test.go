package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carwash/internal/auth"
	"carwash/internal/config"
	"carwash/internal/errors"
	"carwash/internal/handler"
	"carwash/internal/model"
	"carwash/internal/service"
)

const testSecret = "router-test-secret"

type fakeAuthenticator struct {
	employees map[uint]*model.Employee
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, employeeID uint, _ string) (*model.Employee, error) {
	if e, ok := f.employees[employeeID]; ok {
		return e, nil
	}
	return nil, errors.ErrUnauthorized
}

type stubOrderService struct {
	service.OrderService
	listed []model.ServiceOrder
}

func (s *stubOrderService) List(context.Context, *model.OrderStatus) ([]model.ServiceOrder, error) {
	return s.listed, nil
}

func (s *stubOrderService) Get(context.Context, uint) (*service.OrderDetail, error) {
	return nil, errors.ErrOrderNotFound
}

type stubEmployeeService struct {
	service.EmployeeService
}

func (stubEmployeeService) List(context.Context) ([]model.Employee, error) {
	return []model.Employee{}, nil
}

func role(id uint) *uint { return &id }

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	cfg := &config.Config{
		CORSOrigins: "*",
		Auth: config.AuthConfig{
			JWTSecret:       testSecret,
			LoginRatePerSec: 0.001,
			LoginBurst:      2,
		},
	}
	authn := &fakeAuthenticator{employees: map[uint]*model.Employee{
		1: {ID: 1, Email: "admin@example.com", RoleID: role(model.RoleAdmin)},
		3: {ID: 3, Email: "washer@example.com", RoleID: role(model.RoleWasher)},
	}}

	e := echo.New()
	Register(e, cfg, zerolog.Nop(), authn, Handlers{
		Auth:      handler.NewAuthHandler(nil),
		Clients:   handler.NewClientHandler(nil),
		Vehicles:  handler.NewVehicleHandler(nil),
		Services:  handler.NewServiceHandler(nil),
		Employees: handler.NewEmployeeHandler(stubEmployeeService{}),
		Orders:    handler.NewOrderHandler(&stubOrderService{listed: []model.ServiceOrder{{ID: 1, Status: model.OrderStatusPending}}}),
		Earnings:  handler.NewEarningsHandler(nil),
		Access:    handler.NewAccessHandler(nil, nil, nil, nil),
	})
	return e, auth.NewJWTService(testSecret, 0, 0)
}

func bearer(t *testing.T, jwtService *auth.JWTService, employeeID uint) string {
	t.Helper()
	token, err := jwtService.GenerateAccessToken(employeeID, "someone@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestRouter_Healthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	e, _ := newTestServer(t)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "carwash_http_requests_total")
}

func TestRouter_Authentication(t *testing.T) {
	e, jwtService := newTestServer(t)

	tests := []struct {
		name           string
		authorization  string
		expectedCode   int
		expectedDetail string
	}{
		{name: "no token", expectedCode: http.StatusUnauthorized, expectedDetail: "Could not validate credentials"},
		{name: "garbage token", authorization: "Bearer not-a-jwt", expectedCode: http.StatusUnauthorized, expectedDetail: "Could not validate credentials"},
		{name: "wrong secret", authorization: bearer(t, auth.NewJWTService("other", 0, 0), 1), expectedCode: http.StatusUnauthorized, expectedDetail: "Could not validate credentials"},
		{name: "revoked session", authorization: bearer(t, jwtService, 99), expectedCode: http.StatusUnauthorized, expectedDetail: "Could not validate credentials"},
		{name: "live session", authorization: bearer(t, jwtService, 3), expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ordenes/todos", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, detail(t, rec))
			}
		})
	}
}

func TestRouter_RoleGate(t *testing.T) {
	e, jwtService := newTestServer(t)

	tests := []struct {
		name         string
		employeeID   uint
		expectedCode int
	}{
		{name: "admin lists employees", employeeID: 1, expectedCode: http.StatusOK},
		{name: "washer lists employees", employeeID: 3, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/empleados/todos", nil)
			req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, tt.employeeID))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusForbidden {
				assert.Equal(t, "No tienes permiso", detail(t, rec))
			}
		})
	}
}

func TestRouter_DomainErrorsRenderDetail(t *testing.T) {
	e, jwtService := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ordenes-servicio/42", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, 3))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Orden de servicio no encontrada", detail(t, rec))
}

func TestRouter_UnknownStatusFilter(t *testing.T) {
	e, jwtService := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ordenes/todos?estado=LAVANDO", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, jwtService, 3))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detail(t, rec), "LAVANDO")
}

func TestRouter_LoginRateLimit(t *testing.T) {
	e, _ := newTestServer(t)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// Burst of two: both are rejected by validation before reaching the service.
	assert.Equal(t, http.StatusBadRequest, send().Code)
	assert.Equal(t, http.StatusBadRequest, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many login attempts", detail(t, rec))
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&handler.LoginRequest{Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password is required")
}
