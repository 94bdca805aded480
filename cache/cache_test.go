package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingSource records loads so tests can tell a closed session, which
// never loads again, from a live one.
type countingSource struct{ calls atomic.Int32 }

func (c *countingSource) SearchProducts(context.Context, string) ([]models.UpstreamProduct, error) {
	c.calls.Add(1)
	return nil, nil
}

func closed(t *testing.T, src *countingSource, sess *catalog.Session) bool {
	t.Helper()
	before := src.calls.Load()
	sess.Sync(context.Background(), "after-close")
	return src.calls.Load() == before
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T, ttl time.Duration, maxSessions int) (*SessionStore, *countingSource, *atomic.Int32) {
	t.Helper()
	src := &countingSource{}
	made := &atomic.Int32{}
	store := NewSessionStore(ttl, maxSessions, func(id string) *catalog.Session {
		made.Add(1)
		return catalog.NewSession(id, src, 6, zap.NewNop())
	})
	t.Cleanup(store.Close)
	return store, src, made
}

func TestSessionStore_GetOrCreateReusesLiveSession(t *testing.T) {
	store, _, made := newTestStore(t, time.Hour, 10)

	first, created := store.GetOrCreate("abc")
	require.True(t, created)

	again, created := store.GetOrCreate("abc")
	assert.False(t, created)
	assert.Same(t, first, again)
	assert.EqualValues(t, 1, made.Load())
}

func TestSessionStore_EvictsLeastRecentlyUsedWhenFull(t *testing.T) {
	store, src, _ := newTestStore(t, time.Hour, 2)

	a, _ := store.GetOrCreate("a")
	b, _ := store.GetOrCreate("b")
	store.GetOrCreate("a")
	store.GetOrCreate("c")

	assert.Equal(t, 2, store.Len())
	assert.True(t, closed(t, src, b), "evicted session is closed")
	assert.False(t, closed(t, src, a))

	_, created := store.GetOrCreate("a")
	assert.False(t, created)
	_, created = store.GetOrCreate("b")
	assert.True(t, created)
}

func TestSessionStore_FloodStaysBounded(t *testing.T) {
	store, _, made := newTestStore(t, time.Hour, 50)

	for i := range 500 {
		store.GetOrCreate(fmt.Sprintf("visitor-%d", i))
	}
	assert.Equal(t, 50, store.Len())
	assert.EqualValues(t, 500, made.Load())
}

func TestSessionStore_ExpiredSessionIsReplaced(t *testing.T) {
	store, src, made := newTestStore(t, 30*time.Millisecond, 10)
	first, _ := store.GetOrCreate("abc")

	time.Sleep(60 * time.Millisecond)

	second, created := store.GetOrCreate("abc")
	assert.True(t, created)
	assert.NotSame(t, first, second)
	assert.EqualValues(t, 2, made.Load())
	assert.True(t, closed(t, src, first), "expired session is closed")
}

func TestSessionStore_LookupsExtendLifetime(t *testing.T) {
	store, _, _ := newTestStore(t, 300*time.Millisecond, 10)
	first, _ := store.GetOrCreate("abc")

	for range 4 {
		time.Sleep(100 * time.Millisecond)
		sess, created := store.GetOrCreate("abc")
		require.False(t, created)
		require.Same(t, first, sess)
	}
}

func TestSessionStore_CloseClosesEverySession(t *testing.T) {
	store, src, _ := newTestStore(t, time.Hour, 10)
	a, _ := store.GetOrCreate("a")
	b, _ := store.GetOrCreate("b")

	store.Close()

	assert.Zero(t, store.Len())
	assert.True(t, closed(t, src, a))
	assert.True(t, closed(t, src, b))
}

func TestMemoryListingCache(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryListingCache(ListingTTL)
	c.now = clk.now

	key := ListingKey("", "7")
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	c.Set(ctx, key, []byte(`{"data":[]}`))
	body, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.JSONEq(t, `{"data":[]}`, string(body))

	clk.advance(ListingTTL)
	_, ok = c.Get(ctx, key)
	assert.False(t, ok)

	c.Set(ctx, ListingKey("lamp", "1"), []byte(`{}`))
	assert.Len(t, c.entries, 1, "expired entries are pruned on write")
}

func TestNewListingCache_FallsBackToMemory(t *testing.T) {
	c := NewListingCache(nil, 0)
	mem, ok := c.(*MemoryListingCache)
	require.True(t, ok)
	assert.Equal(t, ListingTTL, mem.ttl)
}

func TestListingKey(t *testing.T) {
	assert.Equal(t, "page=3&q=tea", ListingKey("tea", "3"))
	assert.NotEqual(t, ListingKey("a", "12"), ListingKey("a1", "2"))
}
