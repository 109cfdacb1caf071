package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/performance-dashboard/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Page        *handlers.PageHandler
	Chart       *handlers.ChartHandler
	Departments *handlers.DepartmentsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Get("/", cfg.Page.Index)
	app.Get("/chart.png", cfg.Chart.PNG)

	api := app.Group("/api/v1")
	api.Get("/departments", cfg.Departments.List)
	api.Get("/departments/view", cfg.Departments.View)
	api.Get("/chart", cfg.Chart.Spec)
	api.Post("/chart", cfg.Chart.RenderSpec)
}
