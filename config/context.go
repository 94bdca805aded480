package config

import (
	"context"
	"time"
)

// UpstreamTimeout bounds a single upstream call; main sets it from config.
var UpstreamTimeout = 15 * time.Second

// WithTimeout returns a background context bounded by UpstreamTimeout.
// Loads outlive the request that triggered them, so it is not derived from
// the request context.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), UpstreamTimeout)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
