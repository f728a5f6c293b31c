package main

import (
	"context"
	"fmt"
	"log"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/config"
	"github.com/mkale/transitmate/internal/pkg/database"
	"github.com/mkale/transitmate/internal/pkg/health"
	jwtpkg "github.com/mkale/transitmate/internal/pkg/jwt"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/middleware"
	"github.com/mkale/transitmate/internal/pkg/models"
	natspkg "github.com/mkale/transitmate/internal/pkg/nats"
	nrpkg "github.com/mkale/transitmate/internal/pkg/newrelic"
	"github.com/mkale/transitmate/internal/pkg/store"
	catalogHandler "github.com/mkale/transitmate/services/catalog/handler"
	catalogRepository "github.com/mkale/transitmate/services/catalog/repository"
	catalogUsecase "github.com/mkale/transitmate/services/catalog/usecase"
	driverHandler "github.com/mkale/transitmate/services/driver/handler"
	driverRepository "github.com/mkale/transitmate/services/driver/repository"
	driverUsecase "github.com/mkale/transitmate/services/driver/usecase"
	reportsGateway "github.com/mkale/transitmate/services/reports/gateway"
	reportsHandler "github.com/mkale/transitmate/services/reports/handler"
	reportsRepository "github.com/mkale/transitmate/services/reports/repository"
	reportsUsecase "github.com/mkale/transitmate/services/reports/usecase"
	riderGateway "github.com/mkale/transitmate/services/rider/gateway"
	riderHandler "github.com/mkale/transitmate/services/rider/handler"
	riderHTTP "github.com/mkale/transitmate/services/rider/handler/http"
	riderRepository "github.com/mkale/transitmate/services/rider/repository"
	riderUsecase "github.com/mkale/transitmate/services/rider/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "transitmate"
	configPath := "config/transitmate.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET must be configured")
	}

	// Initialize the key-value store backend
	healthCheckers := make(map[string]health.HealthChecker)
	var kv store.Store
	switch configs.Store.Backend {
	case "postgres":
		postgresClient, err := database.NewPostgresClient(configs.Postgres)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer postgresClient.Close()

		kv, err = store.NewPostgresStore(context.Background(), postgresClient.GetDB())
		if err != nil {
			zapLogger.Fatal("Failed to initialize PostgreSQL store", zap.Error(err))
		}
		healthCheckers["postgres"] = health.CheckFunc(func(ctx context.Context) error {
			return postgresClient.GetDB().PingContext(ctx)
		})
	case "memory":
		kv = store.NewMemoryStore()
	default:
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()

		kv = store.NewRedisStore(redisClient)
		healthCheckers["redis"] = health.CheckFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx)
		})
	}
	zapLogger.Info("Store backend ready", zap.String("backend", configs.Store.Backend))

	// Initialize NATS when configured
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsClient.Close()

		healthCheckers["nats"] = health.CheckFunc(func(ctx context.Context) error {
			if !natsClient.GetConn().IsConnected() {
				return fmt.Errorf("nats connection lost")
			}
			return nil
		})
	}

	// Initialize repositories
	riderRepo := riderRepository.NewRiderRepo(kv)
	driverRepo := driverRepository.NewDriverRepo(kv)
	reportsRepo := reportsRepository.NewReportsRepo(kv)
	ticketRepo := catalogRepository.NewTicketRepo(kv)

	// Initialize gateways
	identityGW := riderGateway.NewIdentityGW(configs, natsClient)
	reportsGW := reportsGateway.NewReportsGW(natsClient)

	// Initialize usecases
	riderUC := riderUsecase.NewRiderUC(riderRepo, identityGW, configs)
	driverUC := driverUsecase.NewDriverUC(driverRepo, configs)
	reportsUC := reportsUsecase.NewReportsUC(reportsRepo, reportsGW)
	catalogUC := catalogUsecase.NewCatalogUC(ticketRepo, reportsUC)

	// Log rider session changes pushed by the identity provider
	unsubscribe, err := riderUC.SubscribeSessionChanges(func(session *models.RiderSession) {
		if session == nil {
			zapLogger.Info("Provider session cleared")
			return
		}
		zapLogger.Info("Provider session changed", zap.String("email", session.Email))
	})
	if err != nil {
		zapLogger.Fatal("Failed to subscribe to session changes", zap.Error(err))
	}
	if unsubscribe != nil {
		defer unsubscribe()
	}

	// Initialize handlers
	riderH := riderHandler.NewHandler(riderHTTP.NewAuthHandler(riderUC), configs)
	driverH := driverHandler.NewHandler(driverUC, configs)
	reportsH := reportsHandler.NewHandler(reportsUC, configs)
	catalogH := catalogHandler.NewHandler(catalogUC, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	if nrMiddleware := nrpkg.Middleware(nrApp); nrMiddleware != nil {
		e.Use(nrMiddleware)
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, healthCheckers)

	// Register public routes
	riderH.RegisterRoutes(e)
	driverH.RegisterRoutes(e)
	reportsH.RegisterRoutes(e)
	catalogH.RegisterRoutes(e)

	// JWT guarded routes
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(configs.JWT.Secret),
	})
	reportsH.RegisterDriverRoutes(e.Group("/reports", jwtMiddleware, middleware.RequireRole(jwtpkg.RoleDriver)))
	catalogH.RegisterRiderRoutes(e.Group("/tickets", jwtMiddleware, middleware.RequireRole(jwtpkg.RoleRider)))

	// API key guarded admin routes
	admin := e.Group("/admin", middleware.ValidateAPIKey(configs.Admin.APIKey))
	driverH.RegisterAdminRoutes(admin)
	reportsH.RegisterAdminRoutes(admin)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
