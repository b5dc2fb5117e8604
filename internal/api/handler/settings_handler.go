package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

// SettingsHandler handles the site-content endpoints. Values are opaque JSON
// documents keyed by section name.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// All handles GET /settings. Keys never saved come back with their defaults.
func (h *SettingsHandler) All(c echo.Context) error {
	settings, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, settings)
}

// Update handles PUT /settings, upserting every key in the body.
func (h *SettingsHandler) Update(c echo.Context) error {
	var values map[string]json.RawMessage
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(values) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one setting is required")
	}

	if err := h.service.Update(c.Request().Context(), values); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "settings updated")
}
