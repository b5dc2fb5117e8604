package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// errorBody is the machine-readable part of the error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope:
//     {"success": false, "error": {"code", "message", "details"}}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Success: false, Error: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorBody) {
	// Echo's own errors (bind failures, validation, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Code: codeForStatus(he.Code), Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorBody{Code: "UNAUTHORIZED", Message: "invalid credentials"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "user not found"}
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "property not found"}
	case errors.Is(err, domain.ErrEnquiryNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "enquiry not found"}
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "transaction not found"}
	case errors.Is(err, domain.ErrReceiptNotFound):
		return http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "receipt not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorBody{Code: "INTERNAL_ERROR", Message: "internal server error"}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
