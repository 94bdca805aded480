package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingTTL matches the home page revalidation window.
const ListingTTL = 60 * time.Second

const listingKeyPrefix = "sepia:listing:"

// ── Upstream listing bodies ──────────────────────────────────────────────────
// Raw upstream listing pages keyed by page/query. Redis when configured,
// otherwise an in-process map.

type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

// ListingKey builds the cache key for a listing page.
func ListingKey(query, page string) string {
	return "page=" + page + "&q=" + query
}

// NewListingCache picks Redis when a client is given.
func NewListingCache(client *redis.Client, ttl time.Duration) ListingCache {
	if ttl <= 0 {
		ttl = ListingTTL
	}
	if client == nil {
		return NewMemoryListingCache(ttl)
	}
	return &RedisListingCache{client: client, ttl: ttl}
}

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := r.client.Get(ctx, listingKeyPrefix+key).Bytes()
	if err != nil {
		// redis.Nil and connection errors alike send the caller upstream
		return nil, false
	}
	return body, true
}

func (r *RedisListingCache) Set(ctx context.Context, key string, body []byte) {
	r.client.Set(ctx, listingKeyPrefix+key, body, r.ttl)
}

type listingEntry struct {
	body      []byte
	fetchedAt time.Time
}

type MemoryListingCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]listingEntry
	now     func() time.Time
}

func NewMemoryListingCache(ttl time.Duration) *MemoryListingCache {
	return &MemoryListingCache{
		ttl:     ttl,
		entries: make(map[string]listingEntry),
		now:     time.Now,
	}
}

func (m *MemoryListingCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if ok && m.now().Sub(e.fetchedAt) < m.ttl {
		return e.body, true
	}
	return nil, false
}

func (m *MemoryListingCache) Set(_ context.Context, key string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.entries {
		if now.Sub(e.fetchedAt) >= m.ttl {
			delete(m.entries, k)
		}
	}
	m.entries[key] = listingEntry{body: body, fetchedAt: now}
}
