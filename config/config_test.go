package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the loader at an empty directory so neither a stray .env
// nor config.yaml leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range []string{
		"STOREFRONT_CONFIG", "APP_ENV", "APP_PORT", "PORT", "ALLOWED_ORIGINS",
		"API_BASE_URL", "REDIS_URL", "UPSTREAM_TIMEOUT", "SESSION_TTL",
		"RATE_LIMIT_WINDOW", "RATE_LIMIT_MAX", "CATALOG_PAGE_SIZE", "SESSION_MAX",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	isolate(t)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("API_BASE_URL", "https://api.example.com/v1/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 6, cfg.Catalog.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.Catalog.SessionTTL)
	assert.Equal(t, 10000, cfg.Catalog.MaxSessions)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CATALOG_PAGE_SIZE", "9")
	t.Setenv("SESSION_MAX", "500")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 9, cfg.Catalog.PageSize)
	assert.Equal(t, 500, cfg.Catalog.MaxSessions)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
}

func TestLoad_AppPortBeatsPort(t *testing.T) {
	isolate(t)
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.App.Port)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
upstream:
  base_url: https://yaml.example.com
  timeout: 4s
catalog:
  page_size: 12
`), 0o600))
	t.Setenv("STOREFRONT_CONFIG", path)
	t.Setenv("CATALOG_PAGE_SIZE", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://yaml.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 8, cfg.Catalog.PageSize)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"UPSTREAM_TIMEOUT":  "soon",
		"CATALOG_PAGE_SIZE": "six",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv("API_BASE_URL", "https://api.example.com")
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	for _, key := range []string{"CATALOG_PAGE_SIZE", "SESSION_MAX"} {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv("API_BASE_URL", "https://api.example.com")
			t.Setenv(key, "0")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
