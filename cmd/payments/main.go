package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"go.uber.org/zap"

	"github.com/viajemos/viajemos/internal/pkg/config"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/health"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	nrpkg "github.com/viajemos/viajemos/internal/pkg/newrelic"
	nsqpkg "github.com/viajemos/viajemos/internal/pkg/nsq"
	"github.com/viajemos/viajemos/internal/pkg/server"
	"github.com/viajemos/viajemos/services/payments/gateway"
	"github.com/viajemos/viajemos/services/payments/handler"
	httpHandler "github.com/viajemos/viajemos/services/payments/handler/http"
	"github.com/viajemos/viajemos/services/payments/repository"
	"github.com/viajemos/viajemos/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configs := config.InitConfig("config/payments.env")
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
		zap.Bool("sandbox", configs.Payments.Sandbox),
	)

	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}

	paymentRepo := repository.NewPaymentRepo(mongoClient, configs)
	paymentGW := gateway.NewPaymentGW(producer, configs)
	paymentUC := usecase.NewPaymentUC(paymentRepo, paymentGW, configs)

	Handler := handler.NewHandler(httpHandler.NewPaymentHandler(paymentUC))

	healthService := health.NewHealthService()
	healthService.AddChecker("mongo", health.NewMongoHealthChecker(mongoClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))

	if !configs.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if nrApp != nil {
		r.Use(nrgin.Middleware(nrApp))
	}
	r.Use(logger.ZapGinMiddleware(zapLogger))

	health.RegisterGinEndpoints(r, appName, configs.App.Version, healthService)
	Handler.RegisterRoutes(r)

	srv := server.NewGracefulServer(r, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error { return mongoClient.Close(ctx) })
	srv.OnShutdown(func(context.Context) error {
		producer.Stop()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
