package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

type stubEnquiryService struct {
	submitFn func(ctx context.Context, input ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error)
	listFn   func(ctx context.Context, filter ports.EnquiryFilter, page ports.PageRequest) ([]domain.Enquiry, ports.Pagination, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateEnquiryInput) error
}

func (s *stubEnquiryService) Submit(ctx context.Context, input ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error) {
	return s.submitFn(ctx, input)
}

func (s *stubEnquiryService) List(ctx context.Context, filter ports.EnquiryFilter, page ports.PageRequest) ([]domain.Enquiry, ports.Pagination, error) {
	return s.listFn(ctx, filter, page)
}

func (s *stubEnquiryService) Update(ctx context.Context, id string, input ports.UpdateEnquiryInput) error {
	return s.updateFn(ctx, id, input)
}

func TestEnquiryHandler_Submit_Success(t *testing.T) {
	stub := &stubEnquiryService{
		submitFn: func(_ context.Context, input ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error) {
			if input.Type != "callback" || input.Name != "Asha" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.SubmitEnquiryResult{ID: "abc12345-0000", ReferenceNumber: "ABC12345"}, nil
		},
	}
	handler := NewEnquiryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/enquiries",
		`{"type":"callback","name":"Asha","phone":"+91-9800000000","preferredTime":"evening"}`)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["referenceNumber"] != "ABC12345" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEnquiryHandler_Submit_InvalidType(t *testing.T) {
	stub := &stubEnquiryService{
		submitFn: func(context.Context, ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnquiryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/enquiries",
		`{"type":"spam","name":"Asha","phone":"123"}`)
	err := handler.Submit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestEnquiryHandler_Submit_MissingPhone(t *testing.T) {
	stub := &stubEnquiryService{
		submitFn: func(context.Context, ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnquiryHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/enquiries", `{"type":"general","name":"Asha"}`)
	err := handler.Submit(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestEnquiryHandler_List_PassesFilters(t *testing.T) {
	stub := &stubEnquiryService{
		listFn: func(_ context.Context, filter ports.EnquiryFilter, page ports.PageRequest) ([]domain.Enquiry, ports.Pagination, error) {
			if filter.Status != "pending" || page.Page != 2 {
				t.Fatalf("unexpected filter %+v page %+v", filter, page)
			}
			return []domain.Enquiry{}, ports.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 15}, nil
		},
	}
	handler := NewEnquiryHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/enquiries?status=pending&page=2&limit=10", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	if pagination["currentPage"] != float64(2) || pagination["totalItems"] != float64(15) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestEnquiryHandler_Update_NotFound(t *testing.T) {
	stub := &stubEnquiryService{
		updateFn: func(context.Context, string, ports.UpdateEnquiryInput) error {
			return domain.ErrEnquiryNotFound
		},
	}
	handler := NewEnquiryHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/enquiries/missing", `{"status":"contacted"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrEnquiryNotFound) {
		t.Fatalf("err = %v, want ErrEnquiryNotFound", err)
	}
}
