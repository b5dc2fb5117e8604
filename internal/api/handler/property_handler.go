package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

// PropertyHandler handles the public catalogue reads and the admin CRUD for
// listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /properties. All filters are optional and AND-combined.
func (h *PropertyHandler) List(c echo.Context) error {
	filter := ports.PropertyFilter{
		Status:   c.QueryParam("status"),
		Type:     c.QueryParam("type"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	properties, pagination, err := h.service.List(c.Request().Context(), filter, pageRequest(c))
	if err != nil {
		return err
	}

	items := make([]propertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponseFrom(&properties[i]))
	}
	return respond(c, http.StatusOK, propertyListResponse{Items: items, Pagination: pagination})
}

// Get handles GET /properties/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, propertyResponseFrom(p))
}

// Create handles POST /properties.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, propertyResponseFrom(p), "property created")
}

// Update handles PUT /properties/:id. Absent fields are left untouched.
func (h *PropertyHandler) Update(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput()); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "property updated")
}

// Delete handles DELETE /properties/:id.
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "property deleted")
}

// pageRequest reads the shared page/limit query parameters. Malformed values
// fall back to the defaults rather than erroring.
func pageRequest(c echo.Context) ports.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.PageRequest{Page: page, Limit: limit}
}
