package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/api/metrics"
	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// EnquiryHandler handles the public enquiry form and the admin follow-up
// endpoints.
type EnquiryHandler struct {
	service ports.EnquiryService
}

func NewEnquiryHandler(service ports.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

type submitEnquiryRequest struct {
	Type          string  `json:"type" validate:"required,oneof=callback property_enquiry general"`
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone" validate:"required"`
	Message       string  `json:"message"`
	PreferredTime string  `json:"preferredTime"`
	PropertyID    *string `json:"propertyId"`
}

type submitEnquiryResponse struct {
	ID              string `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`
}

type enquiryResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message,omitempty"`
	PreferredTime string    `json:"preferredTime,omitempty"`
	PropertyID    *string   `json:"propertyId,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func enquiryResponseFrom(e *domain.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:            e.ID,
		Type:          e.Type,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Message:       e.Message,
		PreferredTime: e.PreferredTime,
		PropertyID:    e.PropertyID,
		Status:        e.Status,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type enquiryListResponse struct {
	Items      []enquiryResponse `json:"items"`
	Pagination ports.Pagination  `json:"pagination"`
}

type updateEnquiryRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending contacted closed"`
	Notes  *string `json:"notes"`
}

// Submit handles POST /enquiries, the only unauthenticated mutation.
func (h *EnquiryHandler) Submit(c echo.Context) error {
	var req submitEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitEnquiryInput{
		Type:          req.Type,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		PreferredTime: req.PreferredTime,
		PropertyID:    req.PropertyID,
	})
	if err != nil {
		return err
	}
	metrics.EnquiriesSubmittedTotal.WithLabelValues(req.Type).Inc()

	return respondMessage(c, http.StatusCreated, submitEnquiryResponse{
		ID:              result.ID,
		ReferenceNumber: result.ReferenceNumber,
	}, "enquiry submitted")
}

// List handles GET /enquiries, newest first.
func (h *EnquiryHandler) List(c echo.Context) error {
	filter := ports.EnquiryFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
	}

	enquiries, pagination, err := h.service.List(c.Request().Context(), filter, pageRequest(c))
	if err != nil {
		return err
	}

	items := make([]enquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		items = append(items, enquiryResponseFrom(&enquiries[i]))
	}
	return respond(c, http.StatusOK, enquiryListResponse{Items: items, Pagination: pagination})
}

// Update handles PUT /enquiries/:id (status and notes only).
func (h *EnquiryHandler) Update(c echo.Context) error {
	var req updateEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEnquiryInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "enquiry updated")
}
