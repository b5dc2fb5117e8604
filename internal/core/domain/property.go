package domain

import (
	"encoding/json"
	"time"
)

// Property types.
const (
	PropertyTypeResidential  = "residential"
	PropertyTypeAgricultural = "agricultural"
	PropertyTypeCommercial   = "commercial"
)

// Property statuses.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusUpcoming  = "upcoming"
)

// Property is a listing managed by the back office. The JSON-valued fields
// (images, amenities, ...) are opaque to the service layer: they are stored
// and returned verbatim.
type Property struct {
	ID               string
	Title            string
	Slug             string
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
