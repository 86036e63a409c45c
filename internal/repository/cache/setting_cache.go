package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
)

const (
	settingKeyPrefix = "olms:setting:"

	// missingMarker records that a key has no row, so optional settings
	// do not reach Postgres on every lookup.
	missingMarker = "\x00missing"
	maxMissingTTL = 30 * time.Second
)

// kvStore is the part of *redis.Client the cache uses.
type kvStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// settingCache is a read-through Redis cache in front of the settings table.
// Redis failures are logged and fall through to the underlying repository.
type settingCache struct {
	next   repository.SettingRepository
	client kvStore
	ttl    time.Duration
}

func NewSettingCache(next repository.SettingRepository, client *redis.Client, ttl time.Duration) repository.SettingRepository {
	return &settingCache{next: next, client: client, ttl: ttl}
}

func (c *settingCache) missingTTL() time.Duration {
	if c.ttl > 0 && c.ttl < maxMissingTTL {
		return c.ttl
	}
	return maxMissingTTL
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (c *settingCache) Get(ctx context.Context, key string) (*domain.Setting, error) {
	raw, err := c.client.Get(ctx, settingKeyPrefix+key).Result()
	switch {
	case err == nil && raw == missingMarker:
		return nil, repository.ErrNotFound
	case err == nil:
		var s domain.Setting
		if jsonErr := json.Unmarshal([]byte(raw), &s); jsonErr == nil {
			return &s, nil
		}
		logger.WarnContext(ctx, "Discarding unreadable cached setting", "key", key)
	case !errors.Is(err, redis.Nil):
		logger.ExternalServiceResult("redis", "GET", err, "key", key)
	}

	s, err := c.next.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		c.store(ctx, key, missingMarker, c.missingTTL())
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(s); err == nil {
		c.store(ctx, key, string(payload), c.ttl)
	}
	return s, nil
}

func (c *settingCache) store(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, settingKeyPrefix+key, value, ttl).Err(); err != nil {
		logger.ExternalServiceResult("redis", "SET", err, "key", key)
	}
}

func (c *settingCache) List(ctx context.Context) ([]domain.Setting, error) {
	return c.next.List(ctx)
}

func (c *settingCache) Create(ctx context.Context, s *domain.Setting) error {
	if err := c.next.Create(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.Key)
	return nil
}

func (c *settingCache) Upsert(ctx context.Context, key, value string) error {
	if err := c.next.Upsert(ctx, key, value); err != nil {
		return err
	}
	c.invalidate(ctx, key)
	return nil
}

func (c *settingCache) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, settingKeyPrefix+key).Err(); err != nil {
		logger.ExternalServiceResult("redis", "DEL", err, "key", key)
	}
}
