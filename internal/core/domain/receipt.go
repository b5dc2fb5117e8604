package domain

import "time"

// Receipt is a printable payment acknowledgement. ReceiptNumber is unique and
// allocated server-side in the RCP/{year}/{month}/{sequence} scheme;
// AmountInWords is derived from Amount and never accepted from clients.
type Receipt struct {
	ID              string
	ReceiptNumber   string
	TransactionID   *string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Amount          float64
	AmountInWords   string
	Description     string
	PaymentMethod   string
	PropertyDetails string
	IssueDate       time.Time
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
