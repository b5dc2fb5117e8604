package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

// DashboardHandler serves the aggregate admin dashboard view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}
