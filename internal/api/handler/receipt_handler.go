package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/api/metrics"
	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// ReceiptHandler handles the admin receipt endpoints.
type ReceiptHandler struct {
	service ports.FinanceService
}

func NewReceiptHandler(service ports.FinanceService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

type createReceiptRequest struct {
	TransactionID   *string `json:"transaction_id"`
	CustomerName    string  `json:"customer_name" validate:"required"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress string  `json:"customer_address"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description" validate:"required"`
	PaymentMethod   string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer cheque upi card other"`
	PropertyDetails string  `json:"property_details"`
	IssueDate       string  `json:"issue_date" validate:"required"`
	Notes           string  `json:"notes"`
}

type updateReceiptRequest struct {
	CustomerName    *string  `json:"customer_name"`
	CustomerPhone   *string  `json:"customer_phone"`
	CustomerEmail   *string  `json:"customer_email" validate:"omitempty,email"`
	CustomerAddress *string  `json:"customer_address"`
	Amount          *float64 `json:"amount" validate:"omitempty,gt=0"`
	Description     *string  `json:"description"`
	PaymentMethod   *string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer cheque upi card other"`
	PropertyDetails *string  `json:"property_details"`
	IssueDate       *string  `json:"issue_date"`
	Notes           *string  `json:"notes"`
}

// receiptSummary is the trimmed row shown in the receipt register.
type receiptSummary struct {
	ID            string  `json:"id"`
	ReceiptNumber string  `json:"receipt_number"`
	CustomerName  string  `json:"customer_name"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	IssueDate     string  `json:"issue_date"`
}

type receiptResponse struct {
	ID              string    `json:"id"`
	ReceiptNumber   string    `json:"receipt_number"`
	TransactionID   *string   `json:"transaction_id,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	CustomerAddress string    `json:"customer_address,omitempty"`
	Amount          float64   `json:"amount"`
	AmountInWords   string    `json:"amount_in_words"`
	Description     string    `json:"description,omitempty"`
	PaymentMethod   string    `json:"payment_method"`
	PropertyDetails string    `json:"property_details,omitempty"`
	IssueDate       string    `json:"issue_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func receiptResponseFrom(r *domain.Receipt) receiptResponse {
	return receiptResponse{
		ID:              r.ID,
		ReceiptNumber:   r.ReceiptNumber,
		TransactionID:   r.TransactionID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Amount:          r.Amount,
		AmountInWords:   r.AmountInWords,
		Description:     r.Description,
		PaymentMethod:   r.PaymentMethod,
		PropertyDetails: r.PropertyDetails,
		IssueDate:       r.IssueDate.Format(dateLayout),
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
	}
}

// List handles GET /receipts, newest issue date first.
func (h *ReceiptHandler) List(c echo.Context) error {
	receipts, err := h.service.ListReceipts(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]receiptSummary, 0, len(receipts))
	for _, r := range receipts {
		items = append(items, receiptSummary{
			ID:            r.ID,
			ReceiptNumber: r.ReceiptNumber,
			CustomerName:  r.CustomerName,
			Amount:        r.Amount,
			PaymentMethod: r.PaymentMethod,
			IssueDate:     r.IssueDate.Format(dateLayout),
		})
	}
	return respond(c, http.StatusOK, items)
}

// Get handles GET /receipts/:id, returning the full printable record.
func (h *ReceiptHandler) Get(c echo.Context) error {
	r, err := h.service.GetReceipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, receiptResponseFrom(r))
}

// Create handles POST /receipts. The receipt number and amount-in-words are
// generated server-side.
func (h *ReceiptHandler) Create(c echo.Context) error {
	var req createReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "issue_date must be YYYY-MM-DD")
	}

	userID, _, _ := authUser(c)
	r, err := h.service.CreateReceipt(c.Request().Context(), ports.CreateReceiptInput{
		TransactionID:   req.TransactionID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		PropertyDetails: req.PropertyDetails,
		IssueDate:       issueDate,
		Notes:           req.Notes,
		CreatedBy:       userID,
	})
	if err != nil {
		return err
	}
	metrics.ReceiptsCreatedTotal.Inc()

	return respondMessage(c, http.StatusCreated, receiptResponseFrom(r), "receipt issued")
}

// Update handles PUT /receipts/:id. The receipt number never changes.
func (h *ReceiptHandler) Update(c echo.Context) error {
	var req updateReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateReceiptInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		PropertyDetails: req.PropertyDetails,
		Notes:           req.Notes,
	}
	if req.IssueDate != nil {
		parsed, err := time.Parse(dateLayout, *req.IssueDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "issue_date must be YYYY-MM-DD")
		}
		input.IssueDate = &parsed
	}

	if err := h.service.UpdateReceipt(c.Request().Context(), c.Param("id"), input); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "receipt updated")
}

// Delete handles DELETE /receipts/:id.
func (h *ReceiptHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteReceipt(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "receipt deleted")
}
