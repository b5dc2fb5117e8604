package ports

import (
	"context"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// SubmitEnquiryInput is the public enquiry form payload.
type SubmitEnquiryInput struct {
	Type          string
	Name          string
	Email         string
	Phone         string
	Message       string
	PreferredTime string
	PropertyID    *string
}

// SubmitEnquiryResult is returned to the public caller. ReferenceNumber is a
// short human-quotable handle derived from the enquiry ID.
type SubmitEnquiryResult struct {
	ID              string
	ReferenceNumber string
}

// EnquiryFilter carries the optional admin list filters.
type EnquiryFilter struct {
	Status string
	Type   string
}

// UpdateEnquiryInput is a partial update of the admin-managed fields.
type UpdateEnquiryInput struct {
	Status *string
	Notes  *string
}

// EnquiryRepository defines persistence operations for enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, e *domain.Enquiry) error
	// List returns a page of enquiries matching filter plus the total count,
	// newest first.
	List(ctx context.Context, filter EnquiryFilter, page PageRequest) ([]domain.Enquiry, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Enquiry, error)
	Save(ctx context.Context, e *domain.Enquiry) error
}

// EnquiryService defines the enquiry use cases.
type EnquiryService interface {
	// Submit is the only public mutation in the API.
	Submit(ctx context.Context, input SubmitEnquiryInput) (*SubmitEnquiryResult, error)
	List(ctx context.Context, filter EnquiryFilter, page PageRequest) ([]domain.Enquiry, Pagination, error)
	Update(ctx context.Context, id string, input UpdateEnquiryInput) error
}
