package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/ais-aviation/currency-service/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

const ratesKey = "exchange_rates:all"

// RedisRateCache caches the full rate table in Redis as a single JSON value.
type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Config defines connection parameters for Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisRateCache connects to Redis and verifies connectivity.
func NewRedisRateCache(ctx context.Context, cfg Config) (*RedisRateCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisRateCache{client: client, ttl: cfg.TTL}, nil
}

var _ ports.RateCache = (*RedisRateCache)(nil)

// GetRates returns the cached rate table; a miss is (nil, false, nil).
func (c *RedisRateCache) GetRates(ctx context.Context) ([]domain.ExchangeRate, bool, error) {
	res, err := c.client.Get(ctx, ratesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", ratesKey, err)
	}

	var rates []domain.ExchangeRate
	if err := json.Unmarshal([]byte(res), &rates); err != nil {
		return nil, false, fmt.Errorf("json unmarshal cached rates: %w", err)
	}
	return rates, true, nil
}

// SetRates caches the rate table with the configured TTL.
func (c *RedisRateCache) SetRates(ctx context.Context, rates []domain.ExchangeRate) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("json marshal rates: %w", err)
	}
	return c.client.Set(ctx, ratesKey, data, c.ttl).Err()
}

// Invalidate drops the cached table so the next read repopulates it.
func (c *RedisRateCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, ratesKey).Err()
}

// Close releases Redis resources.
func (c *RedisRateCache) Close() error {
	return c.client.Close()
}
