package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// EnquiryService implements the public submission path and the admin views.
type EnquiryService struct {
	repo   ports.EnquiryRepository
	queue  ports.EnquiryQueue
	logger zerolog.Logger
}

// NewEnquiryService creates an EnquiryService. queue may be nil, in which
// case submissions skip the notification pipeline.
func NewEnquiryService(repo ports.EnquiryRepository, queue ports.EnquiryQueue, logger zerolog.Logger) *EnquiryService {
	return &EnquiryService{repo: repo, queue: queue, logger: logger}
}

func (s *EnquiryService) Submit(ctx context.Context, input ports.SubmitEnquiryInput) (*ports.SubmitEnquiryResult, error) {
	e := &domain.Enquiry{
		ID:            uuid.NewString(),
		Type:          input.Type,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Message:       input.Message,
		PreferredTime: input.PreferredTime,
		PropertyID:    input.PropertyID,
		Status:        domain.EnquiryStatusPending,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error().Err(err).Str("type", input.Type).Msg("failed to store enquiry")
		return nil, err
	}

	result := &ports.SubmitEnquiryResult{
		ID:              e.ID,
		ReferenceNumber: strings.ToUpper(e.ID[:8]),
	}

	s.logger.Info().Str("enquiry_id", e.ID).Str("type", e.Type).Msg("enquiry submitted")

	if s.queue != nil {
		s.queue.Enqueue(ports.EnquiryNotification{
			EnquiryID:       e.ID,
			ReferenceNumber: result.ReferenceNumber,
			Type:            e.Type,
			Name:            e.Name,
			Phone:           e.Phone,
			PropertyID:      e.PropertyID,
		})
	}

	return result, nil
}

func (s *EnquiryService) List(ctx context.Context, filter ports.EnquiryFilter, page ports.PageRequest) ([]domain.Enquiry, ports.Pagination, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return items, ports.NewPagination(page, total), nil
}

func (s *EnquiryService) Update(ctx context.Context, id string, input ports.UpdateEnquiryInput) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Status != nil {
		e.Status = *input.Status
	}
	if input.Notes != nil {
		e.Notes = *input.Notes
	}

	return s.repo.Save(ctx, e)
}
