package ports

import (
	"context"
	"time"
)

// RecentEnquiry is the trimmed view shown on the dashboard.
type RecentEnquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// MonthBucket is one point of the enquiries-by-month series.
type MonthBucket struct {
	Month string `json:"month"` // e.g. "Aug 2026"
	Count int64  `json:"count"`
}

// DashboardStats is the aggregate view served at /dashboard/stats.
type DashboardStats struct {
	TotalProperties     int64           `json:"totalProperties"`
	AvailableProperties int64           `json:"availableProperties"`
	SoldProperties      int64           `json:"soldProperties"`
	TotalEnquiries      int64           `json:"totalEnquiries"`
	PendingEnquiries    int64           `json:"pendingEnquiries"`
	ThisMonthEnquiries  int64           `json:"thisMonthEnquiries"`
	RecentEnquiries     []RecentEnquiry `json:"recentEnquiries"`
	EnquiriesByMonth    []MonthBucket   `json:"enquiriesByMonth"`
}

// DashboardRepository defines the count queries backing the stats view.
type DashboardRepository interface {
	CountProperties(ctx context.Context, status string) (int64, error)
	CountEnquiries(ctx context.Context, status string) (int64, error)
	CountEnquiriesBetween(ctx context.Context, from, to time.Time) (int64, error)
	RecentEnquiries(ctx context.Context, limit int) ([]RecentEnquiry, error)
}

// StatsCache is a read-through cache for the computed stats. Get returns
// (nil, nil) on a miss; failures are soft (the service recomputes).
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, error)
	Set(ctx context.Context, stats *DashboardStats) error
}

// DashboardService serves the aggregate stats view.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
