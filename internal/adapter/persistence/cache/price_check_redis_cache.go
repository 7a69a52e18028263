package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "price_check"
	defaultTTL       = 10 * time.Minute
)

// PriceCheckRedisCache stores verification results as JSON under
// "<prefix>:<product url>". Freshness is decided by the caller from
// LastChecked; the TTL only bounds how long entries linger.
type PriceCheckRedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ interfaces.IPriceCheckCache = (*PriceCheckRedisCache)(nil)

func NewPriceCheckRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *PriceCheckRedisCache {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &PriceCheckRedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *PriceCheckRedisCache) key(productURL string) string {
	return fmt.Sprintf("%s:%s", c.prefix, productURL)
}

func (c *PriceCheckRedisCache) Get(ctx context.Context, productURL string) (entities.PriceCheckResult, bool, error) {
	raw, err := c.client.Get(ctx, c.key(productURL)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.PriceCheckResult{}, false, nil
	}
	if err != nil {
		return entities.PriceCheckResult{}, false, err
	}

	var res entities.PriceCheckResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.PriceCheckResult{}, false, fmt.Errorf("decode cached price check: %w", err)
	}
	return res, true, nil
}

func (c *PriceCheckRedisCache) Set(ctx context.Context, productURL string, result entities.PriceCheckResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(productURL), raw, c.ttl).Err()
}
