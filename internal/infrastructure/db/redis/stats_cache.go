package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

const (
	statsKey = "dashboard:stats"
	statsTTL = time.Minute
)

var _ ports.StatsCache = (*StatsCache)(nil)

// StatsCache caches the computed dashboard snapshot in Redis under a short
// TTL so repeated dashboard loads do not hammer the database.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached snapshot, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, error) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached stats: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, payload, statsTTL).Err(); err != nil {
		return fmt.Errorf("cache stats: %w", err)
	}
	return nil
}
