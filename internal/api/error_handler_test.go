package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_EnvelopeShape(t *testing.T) {
	code, resp := renderError(t, domain.ErrPropertyNotFound)

	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if resp["success"] != false {
		t.Fatalf("success = %v, want false", resp["success"])
	}
	body, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("error block missing: %+v", resp)
	}
	if body["code"] != "NOT_FOUND" {
		t.Errorf("code = %v, want NOT_FOUND", body["code"])
	}
	if body["message"] != "property not found" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"validation", echo.NewHTTPError(http.StatusBadRequest, "email is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", echo.NewHTTPError(http.StatusForbidden, "insufficient permissions"), http.StatusForbidden, "FORBIDDEN"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"enquiry not found", domain.ErrEnquiryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"receipt not found", domain.ErrReceiptNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.status {
				t.Fatalf("status = %d, want %d", code, tc.status)
			}
			body := resp["error"].(map[string]any)
			if body["code"] != tc.wantCode {
				t.Errorf("code = %v, want %v", body["code"], tc.wantCode)
			}
		})
	}
}

func TestErrorHandler_InternalHidesCause(t *testing.T) {
	_, resp := renderError(t, errors.New("pq: connection refused"))
	body := resp["error"].(map[string]any)
	if body["message"] != "internal server error" {
		t.Errorf("internal cause leaked: %v", body["message"])
	}
}
