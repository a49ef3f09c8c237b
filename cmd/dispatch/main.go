package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/trucklink/fleetcall/internal/pkg/config"
	"github.com/trucklink/fleetcall/internal/pkg/database"
	"github.com/trucklink/fleetcall/internal/pkg/health"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/middleware"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	natspkg "github.com/trucklink/fleetcall/internal/pkg/nats"
	"github.com/trucklink/fleetcall/internal/pkg/scheduler"
	"github.com/trucklink/fleetcall/services/dispatch/gateway/natsgw"
	"github.com/trucklink/fleetcall/services/dispatch/gateway/ringcentral"
	"github.com/trucklink/fleetcall/services/dispatch/gateway/vapi"
	"github.com/trucklink/fleetcall/services/dispatch/handler"
	httpHandler "github.com/trucklink/fleetcall/services/dispatch/handler/http"
	"github.com/trucklink/fleetcall/services/dispatch/repository"
	"github.com/trucklink/fleetcall/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/dispatch.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	dispatchRepo := repository.NewDispatchRepo(configs, postgresClient.GetDB())

	// Initialize gateways
	telephonyGW := ringcentral.NewClient(configs.Telephony, redisClient)
	voiceAIGW := vapi.NewClient(configs.VoiceAI)
	eventsGW := natsgw.NewEventsGateway(natsClient)

	// Initialize use case
	dispatchUC := usecase.NewDispatchUC(configs, dispatchRepo, dispatchRepo, telephonyGW, voiceAIGW, eventsGW)

	// Handlers for HTTP
	dispatchHandler := httpHandler.NewDispatchHandler(dispatchUC)
	Handler := handler.NewHandler(dispatchHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start the morning check-in sweep scheduler
	if configs.Scheduler.Enabled {
		sweep := scheduler.NewDailyScheduler("morning-checkin-sweep",
			configs.Scheduler.Hour, configs.Scheduler.Minute,
			func(ctx context.Context) {
				reportDate := models.TodayReportDate()
				result, err := dispatchUC.CheckInAllDrivers(ctx, reportDate)
				if err != nil {
					zapLogger.Error("Scheduled check-in sweep failed",
						zap.String("report_date", reportDate),
						zap.Error(err))
					return
				}
				zapLogger.Info("Scheduled check-in sweep finished",
					zap.String("report_date", reportDate),
					zap.Int("calls_attempted", result.TotalCallsAttempted))
			})
		sweep.Start(context.Background())
		defer sweep.Stop()
	}

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
			zapLogger.Info("Server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shut down server gracefully", zap.Error(err))
	}

	zapLogger.Info("Application stopped", zap.String("app", appName))
}
