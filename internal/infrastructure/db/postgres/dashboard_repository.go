package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository implements the count queries behind /dashboard/stats.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountProperties(ctx context.Context, status string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&propertyRow{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) CountEnquiries(ctx context.Context, status string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&enquiryRow{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count enquiries: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) CountEnquiriesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&enquiryRow{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count enquiries between: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) RecentEnquiries(ctx context.Context, limit int) ([]ports.RecentEnquiry, error) {
	var rows []enquiryRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("recent enquiries: %w", err)
	}

	recent := make([]ports.RecentEnquiry, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, ports.RecentEnquiry{
			ID:        row.ID,
			Name:      row.Name,
			Type:      row.Type,
			CreatedAt: row.CreatedAt,
		})
	}
	return recent, nil
}
