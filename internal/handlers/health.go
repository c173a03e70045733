package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/services"
)

// HealthHandler handles the health probe route
type HealthHandler struct {
	Health *services.HealthService
}

// GetHealth handles GET /health
// @Summary Health check
// @Description Report service and repository health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	result := h.Health.Check(c.Context())
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
