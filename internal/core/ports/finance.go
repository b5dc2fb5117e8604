package ports

import (
	"context"
	"time"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// TransactionFilter carries the optional ledger list filters. Zero times mean
// no date bound.
type TransactionFilter struct {
	Type     string
	Category string
	DateFrom time.Time
	DateTo   time.Time
}

// CreateTransactionInput carries a new ledger entry. CreatedBy is the subject
// of the caller's token, never client-supplied.
type CreateTransactionInput struct {
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
}

// UpdateTransactionInput is a partial update: nil fields are left untouched.
type UpdateTransactionInput struct {
	Type            *string
	Category        *string
	Amount          *float64
	Description     *string
	PaymentMethod   *string
	ReferenceNumber *string
	PropertyID      *string
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	TransactionDate *time.Time
	Notes           *string
}

// CreateReceiptInput carries a new receipt. The receipt number and the
// amount-in-words rendering are generated server-side.
type CreateReceiptInput struct {
	TransactionID   *string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Amount          float64
	Description     string
	PaymentMethod   string
	PropertyDetails string
	IssueDate       time.Time
	Notes           string
	CreatedBy       string
}

// UpdateReceiptInput is a partial update. An amount change regenerates the
// amount-in-words field; the receipt number is immutable.
type UpdateReceiptInput struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	CustomerAddress *string
	Amount          *float64
	Description     *string
	PaymentMethod   *string
	PropertyDetails *string
	IssueDate       *time.Time
	Notes           *string
}

// TransactionRepository defines persistence operations for the ledger.
type TransactionRepository interface {
	// List returns all matching entries ordered by transaction_date DESC.
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	Create(ctx context.Context, t *domain.Transaction) error
	Save(ctx context.Context, t *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}

// ReceiptRepository defines persistence operations for receipts.
type ReceiptRepository interface {
	// List returns all receipts ordered by issue_date DESC.
	List(ctx context.Context) ([]domain.Receipt, error)
	FindByID(ctx context.Context, id string) (*domain.Receipt, error)
	// Create allocates the next sequence under numberPrefix (e.g.
	// "RCP/2026/08/") and inserts the row in one transaction, filling
	// r.ReceiptNumber. Concurrent creations serialize on the unique index.
	Create(ctx context.Context, r *domain.Receipt, numberPrefix string) error
	Save(ctx context.Context, r *domain.Receipt) error
	Delete(ctx context.Context, id string) error
}

// FinanceService defines the ledger and receipt use cases.
type FinanceService interface {
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, input UpdateTransactionInput) error
	DeleteTransaction(ctx context.Context, id string) error

	ListReceipts(ctx context.Context) ([]domain.Receipt, error)
	GetReceipt(ctx context.Context, id string) (*domain.Receipt, error)
	CreateReceipt(ctx context.Context, input CreateReceiptInput) (*domain.Receipt, error)
	UpdateReceipt(ctx context.Context, id string, input UpdateReceiptInput) error
	DeleteReceipt(ctx context.Context, id string) error
}
