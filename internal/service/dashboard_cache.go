package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-admin/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const RedisDashboardKey = "dashboard:summary"

// DashboardCache keeps the last computed dashboard summary for a short TTL.
type DashboardCache interface {
	Get(ctx context.Context) (*dto.DashboardResponse, bool, error)
	Set(ctx context.Context, summary *dto.DashboardResponse) error
	Invalidate(ctx context.Context) error
}

type redisDashboardCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

// NewRedisDashboardCache returns a cache backed by Redis. A zero ttl disables caching.
func NewRedisDashboardCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) DashboardCache {
	return &redisDashboardCache{client: client, log: log, ttl: ttl}
}

func (c *redisDashboardCache) Get(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	if c.ttl <= 0 {
		return nil, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, RedisDashboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var summary dto.DashboardResponse
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warnf("Failed to decode cached dashboard: %+v", err)
		return nil, false, nil
	}
	return &summary, true, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, summary *dto.DashboardResponse) error {
	if c.ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, RedisDashboardKey, raw, c.ttl).Err()
}

func (c *redisDashboardCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return c.client.Del(ctx, RedisDashboardKey).Err()
}
