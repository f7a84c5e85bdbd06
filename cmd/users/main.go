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
	nrpkg "github.com/viajemos/viajemos/internal/pkg/newrelic"
	"github.com/viajemos/viajemos/internal/pkg/server"
	"github.com/viajemos/viajemos/services/users/handler"
	httpHandler "github.com/viajemos/viajemos/services/users/handler/http"
	"github.com/viajemos/viajemos/services/users/repository"
	"github.com/viajemos/viajemos/services/users/usecase"
)

func main() {
	appName := "users-service"
	configs := config.InitConfig("config/users.env")
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

	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	userUC := usecase.NewUserUC(userRepo, configs)

	Handler := handler.NewHandler(
		httpHandler.NewAuthHandler(userUC),
		httpHandler.NewUserHandler(userUC),
		httpHandler.NewVehicleHandler(userUC),
		redisClient,
		configs,
	)

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

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
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
