package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// ConnectRedis connects to REDIS_URL. It returns nil, nil when Redis is not
// configured; the listing cache and rate limiter then run without it.
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		Logger.Warn("⚠️ REDIS_URL not set, running without Redis")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	Logger.Info("✅ Connected to Redis", zap.String("ping", res), zap.String("addr", opt.Addr))
	return client, nil
}

func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		Logger.Warn("closing Redis", zap.Error(err))
		return
	}
	Logger.Info("✅ Redis connection closed")
}
