package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"hiko_buyforme/internal/adapter/persistence/repository"
	"hiko_buyforme/internal/config"
	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase"

	"github.com/alicebob/miniredis/v2"
)

func baseConfig() *config.Config {
	return &config.Config{
		AppEnv:                    "development",
		RequestStore:              config.StoreMemory,
		PriceCheckStaleAfter:      2 * time.Minute,
		EstimateServiceFeePercent: 10,
		EstimateShippingFee:       3000,
		NotifyTimeout:             3 * time.Second,
	}
}

func TestNewContainer_MemoryDefaults(t *testing.T) {
	c, err := NewContainer(context.Background(), baseConfig(), logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if _, ok := c.Repo.(*repository.RequestMemoryRepository); !ok {
		t.Fatalf("expected memory repository, got %T", c.Repo)
	}
	if c.Sink.Len() != 1 {
		t.Fatalf("expected the log sink only, got %d sinks", c.Sink.Len())
	}

	created, err := c.UseCase.CreateRequest(context.Background(), usecase.CreateRequestInput{
		UserID: "user-1",
		ProductInfo: entities.ProductInfo{
			Title:           "Air fryer",
			DiscountedPrice: 50000,
			OriginalURL:     "https://shop.example.kr/p/1",
		},
		Quantity: 2,
		ShippingInfo: entities.ShippingInfo{
			Name:       "Kim Minji",
			Phone:      "010-1234-5678",
			Email:      "minji@example.com",
			Address:    "Seoul",
			PostalCode: "04524",
		},
	})
	if err != nil {
		t.Fatalf("create through container: %v", err)
	}
	if created.EstimatedTotalAmount != 113000 {
		t.Fatalf("expected policy from config, got %d", created.EstimatedTotalAmount)
	}
}

func TestNewContainer_OptionalBackends(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := baseConfig()
	cfg.RedisAddr = mr.Addr()
	cfg.RabbitMQURL = "http://not-a-broker"
	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPPort = 587
	cfg.SMTPFromAddress = "no-reply@hiko.kr"

	c, err := NewContainer(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	// rabbitmq is skipped on a bad url, email is kept, log is not needed.
	if c.Sink.Len() != 1 {
		t.Fatalf("expected only the email sink, got %d", c.Sink.Len())
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewContainer_RedisUnreachable(t *testing.T) {
	cfg := baseConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := NewContainer(ctx, cfg, nil); err == nil {
		t.Fatalf("expected redis connection error")
	}
}

func TestNewContainer_UnknownStore(t *testing.T) {
	cfg := baseConfig()
	cfg.RequestStore = "sqlite"

	_, err := NewContainer(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "sqlite") {
		t.Fatalf("expected unknown store error, got %v", err)
	}
}
