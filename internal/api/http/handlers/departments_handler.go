package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/performance-dashboard/internal/api/dto"
	"github.com/spec-kit/performance-dashboard/internal/service"
)

// DepartmentsHandler exposes the dataset and filtered views as JSON.
type DepartmentsHandler struct {
	service *service.DashboardService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(dashboard *service.DashboardService) *DepartmentsHandler {
	return &DepartmentsHandler{service: dashboard}
}

// List GET /api/v1/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.DepartmentResponses(h.service.Departments())})
}

// View GET /api/v1/departments/view.
func (h *DepartmentsHandler) View(c *fiber.Ctx) error {
	view := h.service.View(selectionFromQuery(c))
	return c.JSON(fiber.Map{"data": dto.DepartmentResponses(view)})
}
