package domain

import "time"

// Enquiry types.
const (
	EnquiryTypeCallback = "callback"
	EnquiryTypeProperty = "property_enquiry"
	EnquiryTypeGeneral  = "general"
)

// Enquiry statuses.
const (
	EnquiryStatusPending   = "pending"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusClosed    = "closed"
)

// Enquiry is a customer contact request submitted through the public form.
// PropertyID is nil for callback/general enquiries and survives property
// deletion (the FK is SET NULL).
type Enquiry struct {
	ID            string
	Type          string
	Name          string
	Email         string
	Phone         string
	Message       string
	PreferredTime string
	PropertyID    *string
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
