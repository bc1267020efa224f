package router

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"carwash/internal/access"
	"carwash/internal/auth"
	"carwash/internal/config"
	"carwash/internal/errors"
	"carwash/internal/handler"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth      *handler.AuthHandler
	Clients   *handler.ClientHandler
	Vehicles  *handler.VehicleHandler
	Services  *handler.ServiceHandler
	Employees *handler.EmployeeHandler
	Orders    *handler.OrderHandler
	Earnings  *handler.EarningsHandler
	Access    *handler.AccessHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	authn access.Authenticator,
	h Handlers,
) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(requestLogger(log))
	e.Use(requestMetrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/login", h.Auth.Login, loginLimiter(cfg.Auth))
	e.POST("/refresh", h.Auth.Refresh)

	gate := access.NewGate(access.Policy)
	authenticated := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:    []byte(cfg.Auth.JWTSecret),
			SigningMethod: echojwt.AlgorithmHS256,
			TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.Claims) },
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Detail: errors.ErrUnauthorized.Error()}).SetInternal(err)
			},
		}),
		access.Identify(authn),
	}
	secured := func(method, path string, fn echo.HandlerFunc, action access.Action) {
		mw := append(append([]echo.MiddlewareFunc{}, authenticated...), gate.Require(action))
		e.Add(method, path, fn, mw...)
	}

	secured(http.MethodPost, "/logout", h.Auth.Logout, access.Logout)

	// Client routes
	secured(http.MethodPost, "/clientes/registrar", h.Clients.Register, access.ClientRegister)
	secured(http.MethodGet, "/clientes/todos", h.Clients.List, access.ClientList)
	secured(http.MethodGet, "/clientes/:cedula", h.Clients.Get, access.ClientGet)
	secured(http.MethodPut, "/clientes/actualizar/:cedula", h.Clients.Update, access.ClientUpdate)
	secured(http.MethodDelete, "/clientes/eliminar/:cedula", h.Clients.Delete, access.ClientDelete)

	// Vehicle routes
	secured(http.MethodPost, "/vehiculos/registrar", h.Vehicles.Register, access.VehicleRegister)
	secured(http.MethodGet, "/vehiculos/todos", h.Vehicles.List, access.VehicleList)
	secured(http.MethodGet, "/vehiculos/:placa", h.Vehicles.Get, access.VehicleGet)
	secured(http.MethodPut, "/vehiculos/actualizar/:placa", h.Vehicles.Update, access.VehicleUpdate)
	secured(http.MethodDelete, "/vehiculos/eliminar/:placa", h.Vehicles.Delete, access.VehicleDelete)

	// Service catalog routes
	secured(http.MethodPost, "/servicios/registrar", h.Services.Register, access.ServiceRegister)
	secured(http.MethodGet, "/servicios/todos", h.Services.List, access.ServiceList)
	secured(http.MethodGet, "/servicios/:id", h.Services.Get, access.ServiceGet)
	secured(http.MethodPut, "/servicios/actualizar/:id", h.Services.Update, access.ServiceUpdate)
	secured(http.MethodDelete, "/servicios/eliminar/:id", h.Services.Delete, access.ServiceDelete)

	// Employee routes
	secured(http.MethodPost, "/empleados/registrar", h.Employees.Register, access.EmployeeRegister)
	secured(http.MethodGet, "/empleados/todos", h.Employees.List, access.EmployeeList)
	secured(http.MethodGet, "/empleados/:cedula", h.Employees.Get, access.EmployeeGet)
	secured(http.MethodPut, "/empleados/actualizar/:cedula", h.Employees.Update, access.EmployeeUpdate)
	secured(http.MethodDelete, "/empleados/eliminar/:cedula", h.Employees.Delete, access.EmployeeDelete)

	// Service order routes
	secured(http.MethodPost, "/ordenes-servicio/registrar", h.Orders.Register, access.OrderRegister)
	secured(http.MethodGet, "/ordenes/todos", h.Orders.List, access.OrderList)
	secured(http.MethodGet, "/ordenes-servicio/:id", h.Orders.Get, access.OrderGet)
	secured(http.MethodPut, "/ordenes-servicio/actualizar/:id", h.Orders.Update, access.OrderUpdate)
	secured(http.MethodDelete, "/ordenes-servicio/eliminar/:id", h.Orders.Delete, access.OrderDelete)

	secured(http.MethodGet, "/pagos/:empleado_id/ganancias", h.Earnings.Compute, access.EarningsCompute)

	// Permission catalog routes
	secured(http.MethodPost, "/roles/registrar", h.Access.RegisterRole, access.CatalogMutate)
	secured(http.MethodGet, "/roles/todos", h.Access.ListRoles, access.CatalogRead)
	secured(http.MethodGet, "/roles/:id", h.Access.GetRole, access.CatalogRead)
	secured(http.MethodPut, "/roles/actualizar/:id", h.Access.UpdateRole, access.CatalogMutate)
	secured(http.MethodDelete, "/roles/eliminar/:id", h.Access.DeleteRole, access.CatalogMutate)

	secured(http.MethodPost, "/modulos", h.Access.RegisterModule, access.CatalogMutate)
	secured(http.MethodGet, "/modulos/todos", h.Access.ListModules, access.CatalogRead)
	secured(http.MethodGet, "/modulos/:id", h.Access.GetModule, access.CatalogRead)
	secured(http.MethodPut, "/modulos/:id", h.Access.UpdateModule, access.CatalogMutate)
	secured(http.MethodDelete, "/modulos/:id", h.Access.DeleteModule, access.CatalogMutate)

	secured(http.MethodPost, "/operacions/registrar", h.Access.RegisterOperation, access.CatalogMutate)
	secured(http.MethodGet, "/operacions/todos", h.Access.ListOperations, access.CatalogRead)
	secured(http.MethodGet, "/operacions/:id", h.Access.GetOperation, access.CatalogRead)
	secured(http.MethodPut, "/operacions/actualizar/:id", h.Access.UpdateOperation, access.CatalogMutate)
	secured(http.MethodDelete, "/operacions/eliminar/:id", h.Access.DeleteOperation, access.CatalogMutate)

	secured(http.MethodPost, "/operacion-rols/registrar", h.Access.RegisterGrant, access.CatalogMutate)
	secured(http.MethodGet, "/operacion-rols/todos", h.Access.ListGrants, access.CatalogRead)
	secured(http.MethodGet, "/operacion-rols/:id", h.Access.GetGrant, access.CatalogRead)
	secured(http.MethodPut, "/operacion-rols/actualizar/:id", h.Access.UpdateGrant, access.CatalogMutate)
	secured(http.MethodDelete, "/operacion-rols/eliminar/:id", h.Access.DeleteGrant, access.CatalogMutate)
}

// loginLimiter throttles login attempts per client IP.
func loginLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.LoginRatePerSec),
		Burst:     cfg.LoginBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{Detail: "could not identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{Detail: "Too many login attempts"})
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
