package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "embedded", cfg.Catalog.Driver)
	// dev mode fills in a throwaway session secret
	assert.NotEmpty(t, cfg.Session.Secret)
}

func TestSanitizeTrimsBaseURL(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com/ ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
}

func TestSanitizeRequiresSecretInProd(t *testing.T) {
	t.Setenv("DEV", "false")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestSanitizeRejectsUnknownCatalogDriver(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("CATALOG_DRIVER", "ftp")

	_, err := Load()
	require.Error(t, err)
}

func TestSanitizeS3DriverNeedsRegionAndBucket(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("CATALOG_DRIVER", "s3")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("CATALOG_S3_REGION", "eu-central-1")
	t.Setenv("CATALOG_S3_BUCKET", "olcademy-fixtures")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Catalog.Driver)
	assert.Equal(t, "fixtures/products.json", cfg.Catalog.S3Key)
}
