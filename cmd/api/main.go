package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/performance-dashboard/internal/api/http"
	"github.com/spec-kit/performance-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/performance-dashboard/internal/chart"
	"github.com/spec-kit/performance-dashboard/internal/config"
	"github.com/spec-kit/performance-dashboard/internal/dataset"
	"github.com/spec-kit/performance-dashboard/internal/events"
	"github.com/spec-kit/performance-dashboard/internal/observability"
	"github.com/spec-kit/performance-dashboard/internal/persistence"
	"github.com/spec-kit/performance-dashboard/internal/service"
	"github.com/spec-kit/performance-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	table, err := dataset.Default()
	if err != nil {
		logger.Fatal("failed to build dataset", zap.Error(err))
	}
	logger.Info("dataset ready", zap.Int("departments", table.Len()))

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartRenderAuditWorker(dispatcher, logger, metrics)

	deps := service.DashboardDependencies{
		Table:      table,
		Dispatcher: dispatcher,
		Logger:     logger,
		RenderOptions: chart.RenderOptions{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
		},
	}
	if cfg.Chart.CacheEnabled && redis.Enabled() {
		deps.Cache = redis
	}
	dashboard := service.NewDashboardService(deps)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, metrics),
		Page:        handlers.NewPageHandler(dashboard),
		Chart:       handlers.NewChartHandler(dashboard),
		Departments: handlers.NewDepartmentsHandler(dashboard),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
