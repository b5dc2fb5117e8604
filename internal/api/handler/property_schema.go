package handler

import (
	"encoding/json"
	"time"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// Property payloads use the camelCase wire names the site frontend consumes.

type createPropertyRequest struct {
	Title            string          `json:"title" validate:"required"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Price            float64         `json:"price" validate:"required,gt=0"`
	PricePerSqFt     float64         `json:"pricePerSqft"`
	Area             string          `json:"area"`
	AreaInSqFt       int             `json:"areaInSqft"`
	Location         string          `json:"location" validate:"required"`
	FullAddress      string          `json:"fullAddress"`
	GoogleMapsLink   string          `json:"googleMapsLink"`
	Type             string          `json:"type" validate:"required,oneof=residential agricultural commercial"`
	Status           string          `json:"status" validate:"omitempty,oneof=available sold upcoming"`
	Featured         bool            `json:"featured"`
	Images           json.RawMessage `json:"images"`
	Amenities        json.RawMessage `json:"amenities"`
	Highlights       json.RawMessage `json:"highlights"`
	LegalInfo        json.RawMessage `json:"legalInfo"`
	NearbyPlaces     json.RawMessage `json:"nearbyPlaces"`
}

func (r createPropertyRequest) toInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		PricePerSqFt:     r.PricePerSqFt,
		Area:             r.Area,
		AreaInSqFt:       r.AreaInSqFt,
		Location:         r.Location,
		FullAddress:      r.FullAddress,
		GoogleMapsLink:   r.GoogleMapsLink,
		Type:             r.Type,
		Status:           r.Status,
		Featured:         r.Featured,
		Images:           r.Images,
		Amenities:        r.Amenities,
		Highlights:       r.Highlights,
		LegalInfo:        r.LegalInfo,
		NearbyPlaces:     r.NearbyPlaces,
	}
}

type updatePropertyRequest struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	ShortDescription *string         `json:"shortDescription"`
	Price            *float64        `json:"price" validate:"omitempty,gt=0"`
	PricePerSqFt     *float64        `json:"pricePerSqft"`
	Area             *string         `json:"area"`
	AreaInSqFt       *int            `json:"areaInSqft"`
	Location         *string         `json:"location"`
	FullAddress      *string         `json:"fullAddress"`
	GoogleMapsLink   *string         `json:"googleMapsLink"`
	Type             *string         `json:"type" validate:"omitempty,oneof=residential agricultural commercial"`
	Status           *string         `json:"status" validate:"omitempty,oneof=available sold upcoming"`
	Featured         *bool           `json:"featured"`
	Images           json.RawMessage `json:"images"`
	Amenities        json.RawMessage `json:"amenities"`
	Highlights       json.RawMessage `json:"highlights"`
	LegalInfo        json.RawMessage `json:"legalInfo"`
	NearbyPlaces     json.RawMessage `json:"nearbyPlaces"`
}

func (r updatePropertyRequest) toInput() ports.UpdatePropertyInput {
	return ports.UpdatePropertyInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		PricePerSqFt:     r.PricePerSqFt,
		Area:             r.Area,
		AreaInSqFt:       r.AreaInSqFt,
		Location:         r.Location,
		FullAddress:      r.FullAddress,
		GoogleMapsLink:   r.GoogleMapsLink,
		Type:             r.Type,
		Status:           r.Status,
		Featured:         r.Featured,
		Images:           r.Images,
		Amenities:        r.Amenities,
		Highlights:       r.Highlights,
		LegalInfo:        r.LegalInfo,
		NearbyPlaces:     r.NearbyPlaces,
	}
}

type propertyResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Price            float64         `json:"price"`
	PricePerSqFt     float64         `json:"pricePerSqft"`
	Area             string          `json:"area"`
	AreaInSqFt       int             `json:"areaInSqft"`
	Location         string          `json:"location"`
	FullAddress      string          `json:"fullAddress"`
	GoogleMapsLink   string          `json:"googleMapsLink"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Featured         bool            `json:"featured"`
	Images           json.RawMessage `json:"images"`
	Amenities        json.RawMessage `json:"amenities"`
	Highlights       json.RawMessage `json:"highlights"`
	LegalInfo        json.RawMessage `json:"legalInfo"`
	NearbyPlaces     json.RawMessage `json:"nearbyPlaces"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func propertyResponseFrom(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		PricePerSqFt:     p.PricePerSqFt,
		Area:             p.Area,
		AreaInSqFt:       p.AreaInSqFt,
		Location:         p.Location,
		FullAddress:      p.FullAddress,
		GoogleMapsLink:   p.GoogleMapsLink,
		Type:             p.Type,
		Status:           p.Status,
		Featured:         p.Featured,
		Images:           p.Images,
		Amenities:        p.Amenities,
		Highlights:       p.Highlights,
		LegalInfo:        p.LegalInfo,
		NearbyPlaces:     p.NearbyPlaces,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type propertyListResponse struct {
	Items      []propertyResponse `json:"items"`
	Pagination ports.Pagination   `json:"pagination"`
}
