package ports

import (
	"context"
	"encoding/json"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// PropertyFilter carries the optional query parameters for the public
// property listing. Location and Search are case-insensitive substring
// matches; all filters are AND-combined.
type PropertyFilter struct {
	Status   string
	Type     string
	Featured *bool
	Location string
	Search   string // matches title, description or location
}

// CreatePropertyInput carries all data for a new listing. The slug is derived
// from the title by the service, never supplied by the client.
type CreatePropertyInput struct {
	Title            string
	Description      string
	ShortDescription string
	Price            float64
	PricePerSqFt     float64
	Area             string
	AreaInSqFt       int
	Location         string
	FullAddress      string
	GoogleMapsLink   string
	Type             string
	Status           string
	Featured         bool
	Images           json.RawMessage
	Amenities        json.RawMessage
	Highlights       json.RawMessage
	LegalInfo        json.RawMessage
	NearbyPlaces     json.RawMessage
}

// UpdatePropertyInput is a partial update: nil fields are left untouched.
// A title change re-derives the slug.
type UpdatePropertyInput struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Price            *float64
	PricePerSqFt     *float64
	Area             *string
	AreaInSqFt       *int
	Location         *string
	FullAddress      *string
	GoogleMapsLink   *string
	Type             *string
	Status           *string
	Featured         *bool
	Images           json.RawMessage
	Amenities        json.RawMessage
	Highlights       json.RawMessage
	LegalInfo        json.RawMessage
	NearbyPlaces     json.RawMessage
}

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	// List returns a page of properties matching filter plus the total count,
	// ordered by primary key.
	List(ctx context.Context, filter PropertyFilter, page PageRequest) ([]domain.Property, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	// Save persists the full record previously loaded with FindByID.
	Save(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}

// PropertyService defines the listing use cases.
type PropertyService interface {
	List(ctx context.Context, filter PropertyFilter, page PageRequest) ([]domain.Property, Pagination, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Update(ctx context.Context, id string, input UpdatePropertyInput) error
	Delete(ctx context.Context, id string) error
}
