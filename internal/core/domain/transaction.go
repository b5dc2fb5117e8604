package domain

import "time"

// Transaction types.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Payment methods (shared by transactions and receipts).
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheque       = "cheque"
	PaymentMethodUPI          = "upi"
	PaymentMethodCard         = "card"
	PaymentMethodOther        = "other"
)

// Transaction is a single ledger entry. CreatedBy references the admin user
// that recorded it.
type Transaction struct {
	ID              string
	Type            string
	Category        string
	Amount          float64
	Description     string
	PaymentMethod   string
	ReferenceNumber string
	PropertyID      *string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	TransactionDate time.Time
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
