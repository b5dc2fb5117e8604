package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.EnquiryRepository = (*EnquiryRepository)(nil)

// EnquiryRepository implements ports.EnquiryRepository on GORM.
type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	row := enquiryRowFrom(e)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	e.CreatedAt = row.CreatedAt
	e.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *EnquiryRepository) List(ctx context.Context, filter ports.EnquiryFilter, page ports.PageRequest) ([]domain.Enquiry, int64, error) {
	page = page.Normalize()
	query := r.db.WithContext(ctx).Model(&enquiryRow{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count enquiries: %w", err)
	}

	var rows []enquiryRow
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list enquiries: %w", err)
	}

	items := make([]domain.Enquiry, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}
	return items, total, nil
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	var row enquiryRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	e := row.toDomain()
	return &e, nil
}

func (r *EnquiryRepository) Save(ctx context.Context, e *domain.Enquiry) error {
	row := enquiryRowFrom(e)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save enquiry: %w", err)
	}
	e.UpdatedAt = row.UpdatedAt
	return nil
}
