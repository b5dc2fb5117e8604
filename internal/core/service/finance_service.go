package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// FinanceService implements the ledger and receipt use cases.
type FinanceService struct {
	transactions ports.TransactionRepository
	receipts     ports.ReceiptRepository
	logger       zerolog.Logger
	now          func() time.Time
}

func NewFinanceService(transactions ports.TransactionRepository, receipts ports.ReceiptRepository, logger zerolog.Logger) *FinanceService {
	return &FinanceService{
		transactions: transactions,
		receipts:     receipts,
		logger:       logger,
		now:          time.Now,
	}
}

// --- Transactions ---

func (s *FinanceService) ListTransactions(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	return s.transactions.List(ctx, filter)
}

func (s *FinanceService) CreateTransaction(ctx context.Context, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	t := &domain.Transaction{
		ID:              uuid.NewString(),
		Type:            input.Type,
		Category:        input.Category,
		Amount:          input.Amount,
		Description:     input.Description,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: input.ReferenceNumber,
		PropertyID:      input.PropertyID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		TransactionDate: input.TransactionDate,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}

	if err := s.transactions.Create(ctx, t); err != nil {
		s.logger.Error().Err(err).Str("type", input.Type).Msg("failed to create transaction")
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", t.ID).
		Str("type", t.Type).
		Str("category", t.Category).
		Float64("amount", t.Amount).
		Msg("transaction recorded")
	return t, nil
}

func (s *FinanceService) UpdateTransaction(ctx context.Context, id string, input ports.UpdateTransactionInput) error {
	t, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Type != nil {
		t.Type = *input.Type
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.Amount != nil {
		t.Amount = *input.Amount
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		t.PaymentMethod = *input.PaymentMethod
	}
	if input.ReferenceNumber != nil {
		t.ReferenceNumber = *input.ReferenceNumber
	}
	if input.PropertyID != nil {
		t.PropertyID = input.PropertyID
	}
	if input.CustomerName != nil {
		t.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		t.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		t.CustomerEmail = *input.CustomerEmail
	}
	if input.TransactionDate != nil {
		t.TransactionDate = *input.TransactionDate
	}
	if input.Notes != nil {
		t.Notes = *input.Notes
	}

	return s.transactions.Save(ctx, t)
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.transactions.FindByID(ctx, id); err != nil {
		return err
	}
	return s.transactions.Delete(ctx, id)
}

// --- Receipts ---

func (s *FinanceService) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	return s.receipts.List(ctx)
}

func (s *FinanceService) GetReceipt(ctx context.Context, id string) (*domain.Receipt, error) {
	return s.receipts.FindByID(ctx, id)
}

func (s *FinanceService) CreateReceipt(ctx context.Context, input ports.CreateReceiptInput) (*domain.Receipt, error) {
	now := s.now()
	r := &domain.Receipt{
		ID:              uuid.NewString(),
		TransactionID:   input.TransactionID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		Amount:          input.Amount,
		AmountInWords:   AmountInWords(int64(input.Amount)),
		Description:     input.Description,
		PaymentMethod:   input.PaymentMethod,
		PropertyDetails: input.PropertyDetails,
		IssueDate:       input.IssueDate,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}

	prefix := fmt.Sprintf("RCP/%d/%02d/", now.Year(), int(now.Month()))
	if err := s.receipts.Create(ctx, r, prefix); err != nil {
		s.logger.Error().Err(err).Msg("failed to create receipt")
		return nil, err
	}

	s.logger.Info().
		Str("receipt_id", r.ID).
		Str("receipt_number", r.ReceiptNumber).
		Float64("amount", r.Amount).
		Msg("receipt issued")
	return r, nil
}

func (s *FinanceService) UpdateReceipt(ctx context.Context, id string, input ports.UpdateReceiptInput) error {
	r, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.CustomerName != nil {
		r.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		r.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerEmail != nil {
		r.CustomerEmail = *input.CustomerEmail
	}
	if input.CustomerAddress != nil {
		r.CustomerAddress = *input.CustomerAddress
	}
	if input.Amount != nil {
		r.Amount = *input.Amount
		r.AmountInWords = AmountInWords(int64(r.Amount))
	}
	if input.Description != nil {
		r.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		r.PaymentMethod = *input.PaymentMethod
	}
	if input.PropertyDetails != nil {
		r.PropertyDetails = *input.PropertyDetails
	}
	if input.IssueDate != nil {
		r.IssueDate = *input.IssueDate
	}
	if input.Notes != nil {
		r.Notes = *input.Notes
	}

	return s.receipts.Save(ctx, r)
}

func (s *FinanceService) DeleteReceipt(ctx context.Context, id string) error {
	if _, err := s.receipts.FindByID(ctx, id); err != nil {
		return err
	}
	return s.receipts.Delete(ctx, id)
}
