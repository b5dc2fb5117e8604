package domain

import (
	"encoding/json"
	"time"
)

// Setting is one key of the site content configuration. Value is an opaque
// JSON document owned by the admin frontend.
type Setting struct {
	ID        string
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}
