package cache

import (
	"context"
	"testing"
	"time"

	"hiko_buyforme/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*PriceCheckRedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPriceCheckRedisCache(client, "", ttl), mr
}

func TestPriceCheckRedisCache(t *testing.T) {
	ctx := context.Background()
	url := "https://shop.example.kr/p/1"

	t.Run("miss", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)
		_, ok, err := c.Get(ctx, url)
		if err != nil || ok {
			t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)
		price := int64(45000)
		checked := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		err := c.Set(ctx, url, entities.PriceCheckResult{
			Success:      true,
			CurrentPrice: &price,
			Availability: entities.AvailabilityLimited,
			LastChecked:  checked,
		})
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if !mr.Exists("price_check:" + url) {
			t.Fatalf("expected prefixed key")
		}

		got, ok, err := c.Get(ctx, url)
		if err != nil || !ok {
			t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
		}
		if *got.CurrentPrice != 45000 || got.Availability != entities.AvailabilityLimited || !got.LastChecked.Equal(checked) {
			t.Fatalf("unexpected cached value: %+v", got)
		}
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c, mr := newTestCache(t, 30*time.Second)
		if err := c.Set(ctx, url, entities.PriceCheckResult{Success: true}); err != nil {
			t.Fatalf("set: %v", err)
		}
		mr.FastForward(31 * time.Second)
		_, ok, err := c.Get(ctx, url)
		if err != nil || ok {
			t.Fatalf("expected expired entry, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("corrupt entry", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)
		if err := mr.Set("price_check:"+url, "{not json"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, _, err := c.Get(ctx, url); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
