// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Config holds all configuration for the buy-for-me service.
type Config struct {
	AppEnv      string   `mapstructure:"APP_ENV"`
	HTTPAddr    string   `mapstructure:"HTTP_ADDR"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int     `mapstructure:"RATE_LIMIT_BURST"`

	RequestStore string `mapstructure:"REQUEST_STORE"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	RequestsTable      string `mapstructure:"REQUESTS_TABLE"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	KafkaBrokers     []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic       string   `mapstructure:"KAFKA_TOPIC"`
	RabbitMQURL      string   `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange string   `mapstructure:"RABBITMQ_EXCHANGE"`

	SMTPHost        string `mapstructure:"SMTP_HOST"`
	SMTPPort        int    `mapstructure:"SMTP_PORT"`
	SMTPUsername    string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword    string `mapstructure:"SMTP_PASSWORD"`
	SMTPFromAddress string `mapstructure:"SMTP_FROM_ADDRESS"`
	SMTPFromName    string `mapstructure:"SMTP_FROM_NAME"`

	NotifyTimeout time.Duration `mapstructure:"NOTIFY_TIMEOUT"`

	PriceCheckURL        string        `mapstructure:"PRICE_CHECK_URL"`
	PriceCheckTimeout    time.Duration `mapstructure:"PRICE_CHECK_TIMEOUT"`
	PriceCheckStaleAfter time.Duration `mapstructure:"PRICE_CHECK_STALE_AFTER"`
	PriceCheckRate       float64       `mapstructure:"PRICE_CHECK_RATE"`

	EstimateServiceFeePercent float64 `mapstructure:"ESTIMATE_SERVICE_FEE_PERCENT"`
	EstimateShippingFee       int64   `mapstructure:"ESTIMATE_SHIPPING_FEE"`

	PriceRefreshSchedule string `mapstructure:"PRICE_REFRESH_SCHEDULE"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("CORS_ORIGINS", []string{"*"})
	viper.SetDefault("RATE_LIMIT_PER_SECOND", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("REQUEST_STORE", StoreMemory)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("DYNAMODB_ENDPOINT", "")
	viper.SetDefault("REQUESTS_TABLE", "buy_for_me_requests")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("KAFKA_BROKERS", []string{})
	viper.SetDefault("KAFKA_TOPIC", "buyforme.events")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("RABBITMQ_EXCHANGE", "buyforme_events")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM_ADDRESS", "no-reply@hiko.kr")
	viper.SetDefault("SMTP_FROM_NAME", "HiKo")
	viper.SetDefault("NOTIFY_TIMEOUT", 3*time.Second)
	viper.SetDefault("PRICE_CHECK_URL", "")
	viper.SetDefault("PRICE_CHECK_TIMEOUT", 5*time.Second)
	viper.SetDefault("PRICE_CHECK_STALE_AFTER", 2*time.Minute)
	viper.SetDefault("PRICE_CHECK_RATE", 5.0) // requests per second
	viper.SetDefault("ESTIMATE_SERVICE_FEE_PERCENT", 10.0)
	viper.SetDefault("ESTIMATE_SHIPPING_FEE", 3000)
	viper.SetDefault("PRICE_REFRESH_SCHEDULE", "@every 5m")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	cfg.CORSOrigins = compact(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.RequestStore {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when REQUEST_STORE=postgres")
		}
	default:
		return fmt.Errorf("unknown REQUEST_STORE %q", c.RequestStore)
	}
	if c.EstimateServiceFeePercent < 0 || c.EstimateServiceFeePercent > 50 {
		return fmt.Errorf("ESTIMATE_SERVICE_FEE_PERCENT must be within [0,50], got %v", c.EstimateServiceFeePercent)
	}
	if c.PriceCheckStaleAfter <= 0 {
		return errors.New("PRICE_CHECK_STALE_AFTER must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
