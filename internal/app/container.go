// Package app wires adapters to the use case from configuration. Both the
// API and the worker binaries build the same container.
package app

import (
	"context"
	"errors"
	"fmt"

	"hiko_buyforme/internal/adapter/notification"
	"hiko_buyforme/internal/adapter/persistence/cache"
	"hiko_buyforme/internal/adapter/persistence/repository"
	"hiko_buyforme/internal/adapter/pricecheck"
	"hiko_buyforme/internal/config"
	"hiko_buyforme/internal/infrastructure/database"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase"
	"hiko_buyforme/internal/usecase/interfaces"
)

// Container holds the wired service. Close releases every connection it opened.
type Container struct {
	Repo    interfaces.IBuyForMeRequestRepository
	Prices  *usecase.PriceVerificationService
	Sink    *notification.MultiSink
	UseCase *usecase.BuyForMeUseCase

	closers []func() error
}

// NewContainer connects the configured backends. On error everything opened
// so far is closed again.
func NewContainer(ctx context.Context, cfg *config.Config, log *logger.Logger) (_ *Container, err error) {
	if log == nil {
		log = logger.Nop()
	}
	c := &Container{}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	if c.Repo, err = c.newRepository(ctx, cfg, log); err != nil {
		return nil, err
	}

	var priceCache interfaces.IPriceCheckCache
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, rdb.Close)
		priceCache = cache.NewPriceCheckRedisCache(rdb, "", 0)
		log.Info("price check cache enabled", "backend", "redis")
	}

	var verifier interfaces.IPriceVerifier
	if cfg.PriceCheckURL != "" {
		verifier = pricecheck.NewHTTPPriceVerifier(cfg.PriceCheckURL, cfg.PriceCheckTimeout, cfg.PriceCheckRate, log)
	} else {
		log.Warn("PRICE_CHECK_URL not set, price checks will degrade to the listing snapshot")
	}
	c.Prices = usecase.NewPriceVerificationService(verifier, priceCache, cfg.PriceCheckStaleAfter, log)

	if c.Sink, err = c.newSinks(cfg, log); err != nil {
		return nil, err
	}

	c.UseCase = usecase.NewBuyForMeUseCase(c.Repo, c.Prices, c.Sink, usecase.EstimatePolicy{
		ServiceFeePercent: cfg.EstimateServiceFeePercent,
		ShippingFee:       cfg.EstimateShippingFee,
	}, log)
	return c, nil
}

func (c *Container) newRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (interfaces.IBuyForMeRequestRepository, error) {
	switch cfg.RequestStore {
	case config.StoreDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.IsDevelopment() {
			if err := database.EnsureRequestsTable(ctx, ddb, cfg.RequestsTable); err != nil {
				return nil, err
			}
		}
		log.Info("request store ready", "backend", "dynamodb", "table", cfg.RequestsTable)
		return repository.NewRequestDynamoRepository(ddb, cfg.RequestsTable), nil

	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() error { pool.Close(); return nil })
		if err := database.RunMigrations(ctx, pool); err != nil {
			return nil, err
		}
		log.Info("request store ready", "backend", "postgres")
		return repository.NewRequestPostgresRepository(pool), nil

	case config.StoreMemory:
		log.Warn("using in-memory request store, data is lost on restart")
		return repository.NewRequestMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unknown request store %q", cfg.RequestStore)
}

func (c *Container) newSinks(cfg *config.Config, log *logger.Logger) (*notification.MultiSink, error) {
	sinks := notification.NewMultiSink(log).WithTimeout(cfg.NotifyTimeout)

	if len(cfg.KafkaBrokers) > 0 {
		k := notification.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		c.closers = append(c.closers, k.Close)
		sinks.Add("kafka", k)
	}

	if cfg.RabbitMQURL != "" {
		r, err := notification.NewRabbitMQSink(cfg.RabbitMQURL, cfg.RabbitMQExchange, log)
		if err != nil {
			// Broker outages must not keep the API down; events still reach the log.
			log.Error("rabbitmq sink disabled", "error", err)
		} else {
			c.closers = append(c.closers, r.Close)
			sinks.Add("rabbitmq", r)
		}
	}

	if cfg.SMTPHost != "" {
		e, err := notification.NewEmailSink(notification.SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUsername,
			Password:    cfg.SMTPPassword,
			FromAddress: cfg.SMTPFromAddress,
			FromName:    cfg.SMTPFromName,
		}, log)
		if err != nil {
			return nil, err
		}
		sinks.Add("email", e)
	}

	if sinks.Len() == 0 {
		sinks.Add("log", notification.NewLogSink(log))
	}
	return sinks, nil
}

// Close runs the registered closers in reverse order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
