package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

type stubDashboardRepo struct {
	calls int
}

func (r *stubDashboardRepo) CountProperties(_ context.Context, status string) (int64, error) {
	r.calls++
	switch status {
	case "":
		return 10, nil
	case "available":
		return 7, nil
	default:
		return 2, nil
	}
}

func (r *stubDashboardRepo) CountEnquiries(_ context.Context, status string) (int64, error) {
	r.calls++
	if status == "" {
		return 20, nil
	}
	return 5, nil
}

func (r *stubDashboardRepo) CountEnquiriesBetween(context.Context, time.Time, time.Time) (int64, error) {
	r.calls++
	return 3, nil
}

func (r *stubDashboardRepo) RecentEnquiries(context.Context, int) ([]ports.RecentEnquiry, error) {
	r.calls++
	return nil, nil
}

type stubStatsCache struct {
	stored *ports.DashboardStats
	sets   int
}

func (c *stubStatsCache) Get(context.Context) (*ports.DashboardStats, error) {
	return c.stored, nil
}

func (c *stubStatsCache) Set(_ context.Context, s *ports.DashboardStats) error {
	c.stored = s
	c.sets++
	return nil
}

func TestDashboardService_ComputesOnCacheMiss(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{}
	svc := NewDashboardService(repo, cache, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalProperties != 10 {
		t.Errorf("totalProperties = %d", stats.TotalProperties)
	}
	if stats.AvailableProperties != 7 {
		t.Errorf("availableProperties = %d", stats.AvailableProperties)
	}
	if stats.TotalEnquiries != 20 {
		t.Errorf("totalEnquiries = %d", stats.TotalEnquiries)
	}
	if len(stats.EnquiriesByMonth) != 6 {
		t.Fatalf("buckets = %d, want 6", len(stats.EnquiriesByMonth))
	}
	if stats.EnquiriesByMonth[5].Month != "Aug 2026" {
		t.Errorf("newest bucket = %q, want %q", stats.EnquiriesByMonth[5].Month, "Aug 2026")
	}
	if stats.RecentEnquiries == nil {
		t.Error("recentEnquiries is nil, want empty slice")
	}
	if cache.sets != 1 {
		t.Errorf("cache writes = %d, want 1", cache.sets)
	}
}

func TestDashboardService_ServesFromCache(t *testing.T) {
	repo := &stubDashboardRepo{}
	cache := &stubStatsCache{stored: &ports.DashboardStats{TotalProperties: 42}}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProperties != 42 {
		t.Errorf("totalProperties = %d, want cached 42", stats.TotalProperties)
	}
	if repo.calls != 0 {
		t.Errorf("repo calls = %d, want 0 on cache hit", repo.calls)
	}
}

func TestDashboardService_NilCacheComputes(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, nil, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProperties != 10 {
		t.Errorf("totalProperties = %d", stats.TotalProperties)
	}
}
