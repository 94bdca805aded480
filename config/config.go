package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Env            string   `yaml:"env"`
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type CatalogConfig struct {
	PageSize    int           `yaml:"page_size"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
	MaxSessions int           `yaml:"max_sessions"`
}

type RateLimitConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

type Config struct {
	App       AppConfig       `yaml:"app"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Redis     RedisConfig     `yaml:"redis"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

var ErrMissingBaseURL = errors.New("API_BASE_URL is not set")

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:            "development",
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Upstream: UpstreamConfig{Timeout: 15 * time.Second},
		Catalog: CatalogConfig{
			PageSize:    6,
			SessionTTL:  30 * time.Minute,
			MaxSessions: 10000,
		},
		RateLimit: RateLimitConfig{Max: 100, Window: time.Minute},
	}
}

// Load reads defaults, then the optional YAML file named by STOREFRONT_CONFIG
// (config.yaml when unset), then .env and the process environment.
func Load() (*Config, error) {
	cfg := Default()

	path := getEnv("STOREFRONT_CONFIG", "config.yaml")
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		c.App.Port = v
	} else if v := os.Getenv("PORT"); v != "" {
		c.App.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.App.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}

	var err error
	if c.Upstream.Timeout, err = durationEnv("UPSTREAM_TIMEOUT", c.Upstream.Timeout); err != nil {
		return err
	}
	if c.Catalog.SessionTTL, err = durationEnv("SESSION_TTL", c.Catalog.SessionTTL); err != nil {
		return err
	}
	if c.RateLimit.Window, err = durationEnv("RATE_LIMIT_WINDOW", c.RateLimit.Window); err != nil {
		return err
	}
	if c.Catalog.PageSize, err = intEnv("CATALOG_PAGE_SIZE", c.Catalog.PageSize); err != nil {
		return err
	}
	if c.RateLimit.Max, err = intEnv("RATE_LIMIT_MAX", c.RateLimit.Max); err != nil {
		return err
	}
	if c.Catalog.MaxSessions, err = intEnv("SESSION_MAX", c.Catalog.MaxSessions); err != nil {
		return err
	}
	return nil
}

// Validate checks the values the server cannot run without.
func (c *Config) Validate() error {
	c.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(c.Upstream.BaseURL), "/")
	if c.Upstream.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog page size must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.MaxSessions < 1 {
		return fmt.Errorf("session limit must be positive, got %d", c.Catalog.MaxSessions)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// RedisEnabled reports whether a Redis URL is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.URL != ""
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
