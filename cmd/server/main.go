package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"carwash/docs"
	"carwash/internal/auth"
	"carwash/internal/cache"
	"carwash/internal/config"
	"carwash/internal/db"
	"carwash/internal/handler"
	"carwash/internal/jobs"
	"carwash/internal/logger"
	"carwash/internal/repository"
	"carwash/internal/router"
	"carwash/internal/service"
)

// @title Car Wash API
// @version 1.0
// @description Car wash back office: clients, vehicles, services, employees, service orders and washer earnings.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.MustLoad()

	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Prices and totals go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.Redis)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, grants will be read from the database")
	}
	cancelPing()

	// Initialize repositories
	clientRepo := repository.NewClientRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	moduleRepo := repository.NewModuleRepository(gormDB)
	operationRepo := repository.NewOperationRepository(gormDB)
	grantRepo := repository.NewRoleOperationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	grantStore := auth.NewGrantStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(employeeRepo, tokenRepo, operationRepo, jwtService, grantStore)
	clientService := service.NewClientService(clientRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	orderService := service.NewOrderService(orderRepo, clientRepo, vehicleRepo, serviceRepo, employeeRepo)
	earningsService := service.NewEarningsService(orderRepo)
	roleService := service.NewRoleService(roleRepo, grantStore)
	moduleService := service.NewModuleService(moduleRepo)
	operationService := service.NewOperationService(operationRepo, grantStore)
	grantService := service.NewGrantService(grantRepo, grantStore)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, log, authService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Clients:   handler.NewClientHandler(clientService),
		Vehicles:  handler.NewVehicleHandler(vehicleService),
		Services:  handler.NewServiceHandler(catalogService),
		Employees: handler.NewEmployeeHandler(employeeService),
		Orders:    handler.NewOrderHandler(orderService),
		Earnings:  handler.NewEarningsHandler(earningsService),
		Access:    handler.NewAccessHandler(roleService, moduleService, operationService, grantService),
	})

	scheduler, err := jobs.NewScheduler(cfg.Jobs.TokenPurgeSchedule, authService)
	if err != nil {
		log.Fatal().Err(err).Msg("job scheduler")
	}
	scheduler.Start()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	scheduler.Stop(ctx)
	if err := cacheClient.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
