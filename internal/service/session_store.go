package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for issued tokens: <prefix><user_id>:<token_id>
	RedisAccessTokenKeyPrefix  = "access_token:"
	RedisRefreshTokenKeyPrefix = "refresh_token:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second

	scanBatchSize = 100
)

// SessionStore tracks which issued tokens are still valid. A token is valid while its key exists.
type SessionStore interface {
	Store(ctx context.Context, userID int64, accessTokenID string, accessTTL time.Duration, refreshTokenID string, refreshTTL time.Duration) error
	IsAccessValid(ctx context.Context, userID int64, tokenID string) (bool, error)
	ConsumeRefresh(ctx context.Context, userID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error
	RevokeAll(ctx context.Context, userID int64) error
}

type redisSessionStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisSessionStore(client *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{client: client, log: log}
}

func accessKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", RedisAccessTokenKeyPrefix, userID, tokenID)
}

func refreshKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", RedisRefreshTokenKeyPrefix, userID, tokenID)
}

// Store writes both tokens in one pipeline so a session never has only half its keys.
func (s *redisSessionStore) Store(ctx context.Context, userID int64, accessTokenID string, accessTTL time.Duration, refreshTokenID string, refreshTTL time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, accessKey(userID, accessTokenID), "valid", accessTTL)
		pipe.Set(ctx, refreshKey(userID, refreshTokenID), "valid", refreshTTL)
		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to store session tokens: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) IsAccessValid(ctx context.Context, userID int64, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	exists, err := s.client.Exists(ctx, accessKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

// ConsumeRefresh deletes the refresh token and reports whether it existed, so a refresh
// token can be exchanged at most once.
func (s *redisSessionStore) ConsumeRefresh(ctx context.Context, userID int64, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	deleted, err := s.client.Del(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to consume refresh token: %+v", err)
		return false, err
	}
	return deleted > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	keys := []string{accessKey(userID, accessTokenID)}
	if refreshTokenID != "" {
		keys = append(keys, refreshKey(userID, refreshTokenID))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to revoke session tokens: %+v", err)
		return err
	}
	return nil
}

// RevokeAll removes every token of a user. SCAN is used instead of KEYS to avoid blocking Redis.
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	for _, prefix := range []string{RedisAccessTokenKeyPrefix, RedisRefreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s%d:*", prefix, userID)
		iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan token keys: %+v", err)
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to delete token keys: %+v", err)
			return err
		}
	}
	return nil
}
