package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Content source selector values.
const (
	ContentSourceStatic   = "static"
	ContentSourcePostgres = "postgres"
	ContentSourceS3       = "s3"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// ContentSource selects the content provider: static, postgres, or s3.
	ContentSource string `envconfig:"CONTENT_SOURCE" default:"static"`

	DatabaseURL string `envconfig:"DATABASE_URL"`

	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"ivor-content"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	SentryDSN string `envconfig:"SENTRY_DSN"`

	RateLimitThreshold int           `envconfig:"RATE_LIMIT_THRESHOLD" default:"10"`
	RateLimitWindow    time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`
	CacheTTL           time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// ContentRefreshInterval is how often the server re-reads content from a
	// postgres or s3 provider. Static content never refreshes.
	ContentRefreshInterval time.Duration `envconfig:"CONTENT_REFRESH_INTERVAL" default:"5m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("IVOR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.ContentSource {
	case ContentSourceStatic:
	case ContentSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("IVOR_DATABASE_URL is required when content source is %q", ContentSourcePostgres)
		}
	case ContentSourceS3:
		if !c.HasS3() {
			return fmt.Errorf("IVOR_S3_ENDPOINT, IVOR_S3_ACCESS_KEY_ID, and IVOR_S3_SECRET_ACCESS_KEY are required when content source is %q", ContentSourceS3)
		}
	default:
		return fmt.Errorf("unknown content source %q", c.ContentSource)
	}
	return nil
}

func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
