package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the storefront process reads from the environment.
type Config struct {
	Port      string `env:"APP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	Storage StorageConfig
	Catalog CatalogConfig

	CurrencySymbol    string `env:"CURRENCY_SYMBOL" envDefault:"ج.م"`
	Locale            string `env:"LOCALE" envDefault:"ar-EG"`
	AllowProfileReset bool   `env:"ALLOW_PROFILE_RESET" envDefault:"false"`
}

// StorageConfig selects the key-value backend that stands in for browser storage.
type StorageConfig struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"bolt"`
	Path          string `env:"STORAGE_PATH" envDefault:"giftpanner.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string `env:"STORAGE_KEY_PREFIX"`
}

// CatalogConfig selects where product snapshots come from.
type CatalogConfig struct {
	Source      string `env:"CATALOG_SOURCE" envDefault:"embedded"`
	DatabaseURL string `env:"CATALOG_DATABASE_URL"`
}

// Load reads an optional .env file and then parses the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case "memory", "bolt", "sqlite":
	case "postgres":
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres storage driver")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis storage driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	switch c.Catalog.Source {
	case "embedded":
	case "postgres":
		if c.Catalog.DatabaseURL == "" {
			c.Catalog.DatabaseURL = c.Storage.DatabaseURL
		}
		if c.Catalog.DatabaseURL == "" {
			return fmt.Errorf("CATALOG_DATABASE_URL is required for the postgres catalog")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	return nil
}
