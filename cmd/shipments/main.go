package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/viajemos/viajemos/internal/pkg/config"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/health"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
	nrpkg "github.com/viajemos/viajemos/internal/pkg/newrelic"
	"github.com/viajemos/viajemos/internal/pkg/server"
	"github.com/viajemos/viajemos/services/shipments/gateway"
	"github.com/viajemos/viajemos/services/shipments/handler"
	httpHandler "github.com/viajemos/viajemos/services/shipments/handler/http"
	natsHandler "github.com/viajemos/viajemos/services/shipments/handler/nats"
	"github.com/viajemos/viajemos/services/shipments/repository"
	"github.com/viajemos/viajemos/services/shipments/usecase"
)

func main() {
	appName := "shipments-service"
	configs := config.InitConfig("config/shipments.env")
	if configs.App.Name == "" {
		configs.App.Name = appName
	}

	nrApp := nrpkg.InitNewRelic(configs)
	defer nrpkg.Shutdown(nrApp)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	shipmentRepo := repository.NewShipmentRepo(configs, postgresClient.GetDB(), redisClient)
	shipmentGW := gateway.NewShipmentGW(natsClient, configs)
	shipmentUC := usecase.NewShipmentUC(shipmentRepo, shipmentGW, configs)

	Handler := handler.NewHandler(
		httpHandler.NewShipmentHandler(shipmentUC),
		natsHandler.NewNatsHandler(shipmentUC, natsClient),
		configs,
	)
	if err := Handler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterEchoEndpoints(e, appName, configs.App.Version, healthService)
	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		Handler.CloseNATSConsumers()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
