package ports

import "context"

// EnquiryNotification is the payload handed to the async notification
// pipeline when a public enquiry is submitted.
type EnquiryNotification struct {
	EnquiryID       string
	ReferenceNumber string
	Type            string
	Name            string
	Phone           string
	PropertyID      *string
}

// Notifier delivers a single enquiry notification. Implementations must be
// safe for concurrent use by multiple dispatcher workers.
type Notifier interface {
	Notify(ctx context.Context, n EnquiryNotification) error
}

// EnquiryQueue accepts notifications for asynchronous delivery. Enqueue never
// blocks the request path beyond the channel buffer.
type EnquiryQueue interface {
	Enqueue(n EnquiryNotification)
}
