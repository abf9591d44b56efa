package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	redis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RedisConsultationCache struct {
	client redis.Cmdable
	key    string
}

func NewRedisConsultationCache(addr string, password string, db int) *RedisConsultationCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return NewRedisConsultationCacheWithClient(client)
}

// NewRedisConsultationCacheWithClient usa um cliente já configurado
func NewRedisConsultationCacheWithClient(client redis.Cmdable) *RedisConsultationCache {
	return &RedisConsultationCache{client: client, key: ConsultationKey}
}

func (c *RedisConsultationCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisConsultationCache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (c *RedisConsultationCache) Get(ctx context.Context) ([]*domain.ConsultationRow, bool, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rows []*domain.ConsultationRow
	if err := json.Unmarshal(val, &rows); err != nil {
		return nil, false, err
	}

	return rows, true, nil
}

func (c *RedisConsultationCache) Set(ctx context.Context, rows []*domain.ConsultationRow, ttl time.Duration) error {
	if rows == nil {
		return nil
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key, payload, ttl).Err()
}

func (c *RedisConsultationCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
