package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables via github.com/caarlos0/env.
// cmd/web calls godotenv.Load first so a local .env file works in dev.
type Config struct {
	// Addr is the listen address of the storefront/console server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Dev relaxes cookie security and switches gin out of release mode.
	Dev bool `env:"DEV" envDefault:"false"`

	Backend BackendConfig `envPrefix:"BACKEND_"`
	Admin   AdminConfig   `envPrefix:"ADMIN_"`
	Session SessionConfig `envPrefix:"SESSION_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
}

// BackendConfig points at the remote user/order API.
type BackendConfig struct {
	// BaseURL of the backend REST API, e.g. https://api.example.com
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every backend call. The browser frontend this service
	// replaced had no deadline at all; a hung backend froze the UI. Here a
	// slow call fails with a gateway error instead.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// AdminConfig guards the admin console.
type AdminConfig struct {
	// Email accepted at /admin/login.
	Email string `env:"EMAIL"`

	// PasswordHash is a bcrypt hash of the console password.
	PasswordHash string `env:"PASSWORD_HASH"`

	// SessionTTL is how long an admin session cookie stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

// SessionConfig covers the signed storefront/admin cookies.
type SessionConfig struct {
	// Secret signs session cookies (HMAC-SHA256). Required outside dev.
	Secret string `env:"SECRET"`
}

// CatalogConfig selects where product fixtures come from.
type CatalogConfig struct {
	// Driver: embedded | local | s3
	Driver string `env:"DRIVER" envDefault:"embedded"`

	// LocalPath is the fixture JSON file for the local driver.
	LocalPath string `env:"LOCAL_PATH" envDefault:"./fixtures/products.json"`

	S3Region string `env:"S3_REGION"`
	S3Bucket string `env:"S3_BUCKET"`
	S3Key    string `env:"S3_KEY" envDefault:"fixtures/products.json"`
}

// Load parses the environment and applies guardrails.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Sanitize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Sanitize normalizes values and rejects configurations that cannot work.
func (c *Config) Sanitize() error {
	c.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(c.Backend.BaseURL), "/")
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = 15 * time.Second
	}

	c.Catalog.Driver = strings.ToLower(strings.TrimSpace(c.Catalog.Driver))
	switch c.Catalog.Driver {
	case "", "embedded":
		c.Catalog.Driver = "embedded"
	case "local":
	case "s3":
		if c.Catalog.S3Region == "" || c.Catalog.S3Bucket == "" {
			return fmt.Errorf("catalog s3 driver needs CATALOG_S3_REGION and CATALOG_S3_BUCKET")
		}
	default:
		return fmt.Errorf("unknown CATALOG_DRIVER: %s", c.Catalog.Driver)
	}

	if !c.Dev && c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required outside dev mode")
	}
	if c.Dev && c.Session.Secret == "" {
		c.Session.Secret = "dev-insecure-secret"
	}
	return nil
}
