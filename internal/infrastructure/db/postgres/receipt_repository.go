package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

// createAttempts bounds the retry loop when two creations race for the same
// sequence number and one loses on the unique index.
const createAttempts = 3

var _ ports.ReceiptRepository = (*ReceiptRepository)(nil)

// ReceiptRepository implements ports.ReceiptRepository on GORM.
type ReceiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

func (r *ReceiptRepository) List(ctx context.Context) ([]domain.Receipt, error) {
	var rows []receiptRow
	err := r.db.WithContext(ctx).Order("issue_date DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}

	items := make([]domain.Receipt, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}
	return items, nil
}

func (r *ReceiptRepository) FindByID(ctx context.Context, id string) (*domain.Receipt, error) {
	var row receiptRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("find receipt: %w", err)
	}
	rc := row.toDomain()
	return &rc, nil
}

// Create allocates the next sequence under numberPrefix and inserts the row
// in one transaction. The count+insert pair is not atomic on its own, so the
// unique index on receipt_number is the arbiter: a loser of a concurrent race
// gets gorm.ErrDuplicatedKey and retries with a fresh count.
func (r *ReceiptRepository) Create(ctx context.Context, rc *domain.Receipt, numberPrefix string) error {
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			err := tx.Model(&receiptRow{}).
				Where("receipt_number LIKE ?", numberPrefix+"%").
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("count receipts for %q: %w", numberPrefix, err)
			}

			rc.ReceiptNumber = fmt.Sprintf("%s%04d", numberPrefix, count+1)
			row := receiptRowFrom(rc)
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			rc.CreatedAt = row.CreatedAt
			return nil
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert receipt: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("allocate receipt number under %q: %w", numberPrefix, lastErr)
}

func (r *ReceiptRepository) Save(ctx context.Context, rc *domain.Receipt) error {
	row := receiptRowFrom(rc)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save receipt: %w", err)
	}
	return nil
}

func (r *ReceiptRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&receiptRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
