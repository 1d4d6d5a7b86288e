package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codehook/dashboard/internal/model"
	"github.com/redis/go-redis/v9"
)

const DefaultCardsKey = "dashboard:cards"

// CardCache stores the last computed dashboard summary.
type CardCache interface {
	Get(ctx context.Context) (model.CardData, bool, error)
	Set(ctx context.Context, data model.CardData, ttl time.Duration) error
}

// RedisCardCache keeps CardData as JSON under a single key.
type RedisCardCache struct {
	rdb *redis.Client
	key string
}

func NewRedisCardCache(rdb *redis.Client, key string) *RedisCardCache {
	if key == "" {
		key = DefaultCardsKey
	}
	return &RedisCardCache{rdb: rdb, key: key}
}

var _ CardCache = (*RedisCardCache)(nil)

func (c *RedisCardCache) Get(ctx context.Context) (model.CardData, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.CardData{}, false, nil
	}
	if err != nil {
		return model.CardData{}, false, err
	}

	var d model.CardData
	if err := json.Unmarshal(raw, &d); err != nil {
		return model.CardData{}, false, fmt.Errorf("decode cached cards: %w", err)
	}
	return d, true, nil
}

func (c *RedisCardCache) Set(ctx context.Context, data model.CardData, ttl time.Duration) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, ttl).Err()
}
