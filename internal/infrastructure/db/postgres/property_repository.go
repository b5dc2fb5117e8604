package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository implements ports.PropertyRepository on GORM.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) List(ctx context.Context, filter ports.PropertyFilter, page ports.PageRequest) ([]domain.Property, int64, error) {
	page = page.Normalize()
	query := r.db.WithContext(ctx).Model(&propertyRow{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	var rows []propertyRow
	err := query.Order("id").Offset(page.Offset()).Limit(page.Limit).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}

	items := make([]domain.Property, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}
	return items, total, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var row propertyRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	p := row.toDomain()
	return &p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	row := propertyRowFrom(p)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *PropertyRepository) Save(ctx context.Context, p *domain.Property) error {
	row := propertyRowFrom(p)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save property: %w", err)
	}
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	// Enquiry and transaction references drop to NULL via the FK constraint.
	if err := r.db.WithContext(ctx).Delete(&propertyRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
