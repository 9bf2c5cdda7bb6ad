// Package cache connects the Redis instance that holds login sessions and the cached
// dashboard summary.
package cache

import (
	"context"
	"fmt"
	"time"

	"hospital-admin/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	clientName  = "hospital-admin"
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
)

func options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}
}

// NewRedisClient returns a client only after Redis has answered a PING.
func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr(), err)
	}

	log.WithFields(logrus.Fields{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	}).Info("Connected to session store")

	return client, nil
}
