package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCanonicalOrdering(t *testing.T) {
	a := Key("products", map[string]string{"page": "2", "limit": "10"})
	b := Key("products", map[string]string{"limit": "10", "page": "2"})
	assert.Equal(t, a, b)
	assert.Equal(t, "products:limit=10:page=2", a)

	assert.Equal(t, "orders", Key("orders", nil))
}

func TestReadCachesWithinFreshnessWindow(t *testing.T) {
	c := New()
	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.Read(context.Background(), "products", fetch)
		require.NoError(t, err)
		assert.Equal(t, "payload", got)
	}
	assert.Equal(t, 1, calls)
}

func TestReadRefetchesExpiredEntry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := New(WithFreshness(5*time.Minute), WithClock(func() time.Time { return clock() }))

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}

	_, err := c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)

	// Just inside the window: still served from cache
	clock = func() time.Time { return now.Add(5*time.Minute - time.Second) }
	got, err := c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// At the window boundary the entry is treated as absent
	clock = func() time.Time { return now.Add(5 * time.Minute) }
	got, err = c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestConcurrentReadsCoalesce(t *testing.T) {
	c := New()

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "payload", nil
	}

	var wg sync.WaitGroup
	results := make([]interface{}, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := c.Read(context.Background(), "products", fetch)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	// Let every reader reach the flight group before the fetch resolves
	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, got := range results {
		assert.Equal(t, "payload", got)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	c := New()

	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, assert.AnError
		}
		return "payload", nil
	}

	_, err := c.Read(context.Background(), "products", fetch)
	require.Error(t, err)

	got, err := c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
	assert.Equal(t, 2, calls)
}

func TestInvalidatePrefixForcesRefetch(t *testing.T) {
	c := New()

	calls := map[string]int{}
	fetchFor := func(key string) Fetcher {
		return func(ctx context.Context) (interface{}, error) {
			calls[key]++
			return key, nil
		}
	}

	ordersKey := Key("orders", map[string]string{"page": "1"})
	productsKey := Key("products", map[string]string{"page": "1"})

	_, err := c.Read(context.Background(), ordersKey, fetchFor(ordersKey))
	require.NoError(t, err)
	_, err = c.Read(context.Background(), productsKey, fetchFor(productsKey))
	require.NoError(t, err)

	c.Invalidate("orders")

	// Invalidated prefix refetches regardless of entry age
	_, err = c.Read(context.Background(), ordersKey, fetchFor(ordersKey))
	require.NoError(t, err)
	assert.Equal(t, 2, calls[ordersKey])

	// Unrelated prefix is untouched
	_, err = c.Read(context.Background(), productsKey, fetchFor(productsKey))
	require.NoError(t, err)
	assert.Equal(t, 1, calls[productsKey])
}

func TestClearDropsEverything(t *testing.T) {
	c := New()
	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return "x", nil
	}

	_, err := c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)
	c.Clear()
	_, err = c.Read(context.Background(), "products", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
