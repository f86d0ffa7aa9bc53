package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

// AddressCache кэширует результаты обратного геокодирования в Redis.
// Ключ округляет координаты до ~100 м.
type AddressCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewAddressCache(redisClient *redis.Client, ttl time.Duration) *AddressCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AddressCache{redisClient: redisClient, ttl: ttl}
}

func addressCacheKey(lat, lon float64) string {
	return fmt.Sprintf("revgeo:%.3f:%.3f", lat, lon)
}

// GetAddress пытается получить адрес из Redis. Промах кэша - (nil, nil).
func (c *AddressCache) GetAddress(ctx context.Context, lat, lon float64) (*models.AddressComponents, error) {
	val, err := c.redisClient.Get(ctx, addressCacheKey(lat, lon)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get address from cache: %w", err)
	}

	addr := &models.AddressComponents{}
	if err := json.Unmarshal(val, addr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal address from cache: %w", err)
	}
	return addr, nil
}

// SetAddress сохраняет адрес в Redis
func (c *AddressCache) SetAddress(ctx context.Context, lat, lon float64, addr *models.AddressComponents) error {
	val, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("failed to marshal address for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, addressCacheKey(lat, lon), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set address in cache: %w", err)
	}
	return nil
}
