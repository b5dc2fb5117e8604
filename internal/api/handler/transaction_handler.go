package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/api/metrics"
	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles the admin ledger endpoints. The financial
// payloads keep snake_case wire names.
type TransactionHandler struct {
	service ports.FinanceService
}

func NewTransactionHandler(service ports.FinanceService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type createTransactionRequest struct {
	Type            string  `json:"type" validate:"required,oneof=income expense"`
	Category        string  `json:"category" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description"`
	PaymentMethod   string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer cheque upi card other"`
	ReferenceNumber string  `json:"reference_number"`
	PropertyID      *string `json:"property_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email" validate:"omitempty,email"`
	TransactionDate string  `json:"transaction_date" validate:"required"`
	Notes           string  `json:"notes"`
}

type updateTransactionRequest struct {
	Type            *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category        *string  `json:"category"`
	Amount          *float64 `json:"amount" validate:"omitempty,gt=0"`
	Description     *string  `json:"description"`
	PaymentMethod   *string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer cheque upi card other"`
	ReferenceNumber *string  `json:"reference_number"`
	PropertyID      *string  `json:"property_id"`
	CustomerName    *string  `json:"customer_name"`
	CustomerPhone   *string  `json:"customer_phone"`
	CustomerEmail   *string  `json:"customer_email" validate:"omitempty,email"`
	TransactionDate *string  `json:"transaction_date"`
	Notes           *string  `json:"notes"`
}

type transactionResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description,omitempty"`
	PaymentMethod   string    `json:"payment_method"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	PropertyID      *string   `json:"property_id,omitempty"`
	CustomerName    string    `json:"customer_name,omitempty"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	TransactionDate string    `json:"transaction_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func transactionResponseFrom(t *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID,
		Type:            t.Type,
		Category:        t.Category,
		Amount:          t.Amount,
		Description:     t.Description,
		PaymentMethod:   t.PaymentMethod,
		ReferenceNumber: t.ReferenceNumber,
		PropertyID:      t.PropertyID,
		CustomerName:    t.CustomerName,
		CustomerPhone:   t.CustomerPhone,
		CustomerEmail:   t.CustomerEmail,
		TransactionDate: t.TransactionDate.Format(dateLayout),
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// List handles GET /transactions, ordered by transaction date, newest first.
func (h *TransactionHandler) List(c echo.Context) error {
	filter := ports.TransactionFilter{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		filter.DateFrom = from
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		filter.DateTo = to
	}

	transactions, err := h.service.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]transactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, transactionResponseFrom(&transactions[i]))
	}
	return respond(c, http.StatusOK, items)
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	txDate, err := time.Parse(dateLayout, req.TransactionDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
	}

	userID, _, _ := authUser(c)
	t, err := h.service.CreateTransaction(c.Request().Context(), ports.CreateTransactionInput{
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		PropertyID:      req.PropertyID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		TransactionDate: txDate,
		Notes:           req.Notes,
		CreatedBy:       userID,
	})
	if err != nil {
		return err
	}
	metrics.TransactionsCreatedTotal.WithLabelValues(req.Type).Inc()

	return respondMessage(c, http.StatusCreated, transactionResponseFrom(t), "transaction recorded")
}

// Update handles PUT /transactions/:id.
func (h *TransactionHandler) Update(c echo.Context) error {
	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateTransactionInput{
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		PropertyID:      req.PropertyID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Notes:           req.Notes,
	}
	if req.TransactionDate != nil {
		txDate, err := time.Parse(dateLayout, *req.TransactionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
		}
		input.TransactionDate = &txDate
	}

	if err := h.service.UpdateTransaction(c.Request().Context(), c.Param("id"), input); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "transaction updated")
}

// Delete handles DELETE /transactions/:id.
func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTransaction(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "transaction deleted")
}
