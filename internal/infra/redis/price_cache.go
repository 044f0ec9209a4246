package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rxbryan/galoy/pkg/logger"
)

const (
	// FreshTTL bounds how long a fetched price is served without refetching
	FreshTTL = 60 * time.Second

	// StaleTTL bounds the fallback window served when the feed is down
	StaleTTL = 24 * time.Hour

	priceKey      = "price:btc:display"
	stalePriceKey = priceKey + ":stale"
)

// PriceCache is a Redis-backed cache for the display price of one satoshi
type PriceCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewPriceCache creates a new price cache
func NewPriceCache(client *redis.Client, log *logger.Logger) *PriceCache {
	return &PriceCache{
		client: client,
		logger: log.WithField("component", "price_cache"),
	}
}

type cachedPrice struct {
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get returns a fresh cached price if one exists
func (c *PriceCache) Get(ctx context.Context) (float64, bool, error) {
	return c.get(ctx, priceKey)
}

// GetStale returns a price from the stale fallback window
func (c *PriceCache) GetStale(ctx context.Context) (float64, bool, error) {
	return c.get(ctx, stalePriceKey)
}

// Set stores a freshly fetched price under both the fresh and stale keys
func (c *PriceCache) Set(ctx context.Context, price float64) error {
	payload, err := json.Marshal(cachedPrice{Price: price, UpdatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal cached price: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, priceKey, payload, FreshTTL)
	pipe.Set(ctx, stalePriceKey, payload, StaleTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache price: %w", err)
	}

	return nil
}

func (c *PriceCache) get(ctx context.Context, key string) (float64, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read cached price: %w", err)
	}

	var cached cachedPrice
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.Warn("discarding malformed cached price", "key", key, "error", err)
		return 0, false, nil
	}

	return cached.Price, true, nil
}
