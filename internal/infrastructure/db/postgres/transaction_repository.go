package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository implements ports.TransactionRepository on GORM.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context, filter ports.TransactionFilter) ([]domain.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&transactionRow{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.DateFrom.IsZero() {
		query = query.Where("transaction_date >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		query = query.Where("transaction_date <= ?", filter.DateTo)
	}

	var rows []transactionRow
	if err := query.Order("transaction_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	items := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}
	return items, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var row transactionRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	t := row.toDomain()
	return &t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	row := transactionRowFrom(t)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	t.CreatedAt = row.CreatedAt
	t.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *TransactionRepository) Save(ctx context.Context, t *domain.Transaction) error {
	row := transactionRowFrom(t)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	t.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&transactionRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
