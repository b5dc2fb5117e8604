package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier records each new enquiry in the structured log. It stands in
// for an outbound email/SMS integration behind the same port.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, note ports.EnquiryNotification) error {
	n.log.Info().
		Str("enquiry_id", note.EnquiryID).
		Str("reference_number", note.ReferenceNumber).
		Str("type", note.Type).
		Str("name", note.Name).
		Str("phone", note.Phone).
		Msg("new enquiry received")
	return nil
}
