package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe listing identifier from a title: lowercase,
// non-alphanumeric runs collapsed to single hyphens, edges trimmed.
func Slugify(title string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// PropertyService implements the listing use cases.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) List(ctx context.Context, filter ports.PropertyFilter, page ports.PageRequest) ([]domain.Property, ports.Pagination, error) {
	page = page.Normalize()
	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return items, ports.NewPagination(page, total), nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	status := input.Status
	if status == "" {
		status = domain.PropertyStatusAvailable
	}

	p := &domain.Property{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Slug:             Slugify(input.Title),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		PricePerSqFt:     input.PricePerSqFt,
		Area:             input.Area,
		AreaInSqFt:       input.AreaInSqFt,
		Location:         input.Location,
		FullAddress:      input.FullAddress,
		GoogleMapsLink:   input.GoogleMapsLink,
		Type:             input.Type,
		Status:           status,
		Featured:         input.Featured,
		Images:           input.Images,
		Amenities:        input.Amenities,
		Highlights:       input.Highlights,
		LegalInfo:        input.LegalInfo,
		NearbyPlaces:     input.NearbyPlaces,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", p.ID).Str("slug", p.Slug).Msg("property created")
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, input ports.UpdatePropertyInput) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Title != nil {
		p.Title = *input.Title
		p.Slug = Slugify(*input.Title)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ShortDescription != nil {
		p.ShortDescription = *input.ShortDescription
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.PricePerSqFt != nil {
		p.PricePerSqFt = *input.PricePerSqFt
	}
	if input.Area != nil {
		p.Area = *input.Area
	}
	if input.AreaInSqFt != nil {
		p.AreaInSqFt = *input.AreaInSqFt
	}
	if input.Location != nil {
		p.Location = *input.Location
	}
	if input.FullAddress != nil {
		p.FullAddress = *input.FullAddress
	}
	if input.GoogleMapsLink != nil {
		p.GoogleMapsLink = *input.GoogleMapsLink
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Images != nil {
		p.Images = input.Images
	}
	if input.Amenities != nil {
		p.Amenities = input.Amenities
	}
	if input.Highlights != nil {
		p.Highlights = input.Highlights
	}
	if input.LegalInfo != nil {
		p.LegalInfo = input.LegalInfo
	}
	if input.NearbyPlaces != nil {
		p.NearbyPlaces = input.NearbyPlaces
	}

	return s.repo.Save(ctx, p)
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}
