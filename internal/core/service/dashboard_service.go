package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

const monthlyBuckets = 6

// DashboardService computes the aggregate stats view, with a read-through
// cache in front of the count queries. Cache failures are soft: the service
// recomputes and only logs the miss.
type DashboardService struct {
	repo   ports.DashboardRepository
	cache  ports.StatsCache
	logger zerolog.Logger
	now    func() time.Time
}

// NewDashboardService creates a DashboardService. cache may be nil.
func NewDashboardService(repo ports.DashboardRepository, cache ports.StatsCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}
	var err error

	if stats.TotalProperties, err = s.repo.CountProperties(ctx, ""); err != nil {
		return nil, err
	}
	if stats.AvailableProperties, err = s.repo.CountProperties(ctx, domain.PropertyStatusAvailable); err != nil {
		return nil, err
	}
	if stats.SoldProperties, err = s.repo.CountProperties(ctx, domain.PropertyStatusSold); err != nil {
		return nil, err
	}
	if stats.TotalEnquiries, err = s.repo.CountEnquiries(ctx, ""); err != nil {
		return nil, err
	}
	if stats.PendingEnquiries, err = s.repo.CountEnquiries(ctx, domain.EnquiryStatusPending); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if stats.ThisMonthEnquiries, err = s.repo.CountEnquiriesBetween(ctx, monthStart, now); err != nil {
		return nil, err
	}

	if stats.RecentEnquiries, err = s.repo.RecentEnquiries(ctx, 5); err != nil {
		return nil, err
	}
	if stats.RecentEnquiries == nil {
		stats.RecentEnquiries = []ports.RecentEnquiry{}
	}

	// Six trailing 30-day windows, oldest first.
	stats.EnquiriesByMonth = make([]ports.MonthBucket, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		bucketStart := monthStart.AddDate(0, 0, -i*30)
		bucketEnd := bucketStart.AddDate(0, 0, 30)
		count, err := s.repo.CountEnquiriesBetween(ctx, bucketStart, bucketEnd)
		if err != nil {
			return nil, err
		}
		stats.EnquiriesByMonth = append(stats.EnquiriesByMonth, ports.MonthBucket{
			Month: bucketStart.Format("Jan 2006"),
			Count: count,
		})
	}

	return stats, nil
}
