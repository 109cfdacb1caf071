package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/performance-dashboard/internal/api/dto"
	"github.com/spec-kit/performance-dashboard/internal/domain"
	"github.com/spec-kit/performance-dashboard/internal/service"
	apperrors "github.com/spec-kit/performance-dashboard/pkg/util"
)

// ChartHandler serves the chart Spec and its PNG rendering.
type ChartHandler struct {
	service *service.DashboardService
}

// NewChartHandler constructs handler.
func NewChartHandler(dashboard *service.DashboardService) *ChartHandler {
	return &ChartHandler{service: dashboard}
}

// Spec GET /api/v1/chart.
func (h *ChartHandler) Spec(c *fiber.Ctx) error {
	spec := h.service.RenderSpec(c.UserContext(), selectionFromQuery(c))
	return c.JSON(fiber.Map{"data": spec})
}

// RenderSpec POST /api/v1/chart.
func (h *ChartHandler) RenderSpec(c *fiber.Ctx) error {
	var req dto.RenderChartRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"body": err.Error()})
	}
	spec := h.service.RenderSpec(c.UserContext(), domain.NewSelection(req.Departments...))
	return c.JSON(fiber.Map{"data": spec})
}

// PNG GET /chart.png.
func (h *ChartHandler) PNG(c *fiber.Ctx) error {
	data, err := h.service.RenderPNG(c.UserContext(), selectionFromQuery(c))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(data)
}
