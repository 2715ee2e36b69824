package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*InMemoryIdempotencyStore, *time.Time) {
	t.Helper()
	store := NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestInMemoryIdempotencyStore_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim wins", func(t *testing.T) {
		store, _ := newTestStore(t)

		ok, err := store.Claim(ctx, "tenant:key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Claim(ctx, "tenant:key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok, "repeated key must be rejected")
	})

	t.Run("expired claim can be taken again", func(t *testing.T) {
		store, now := newTestStore(t)

		ok, _ := store.Claim(ctx, "k", time.Minute)
		require.True(t, ok)

		*now = now.Add(time.Minute)
		ok, err := store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release allows a retry", func(t *testing.T) {
		store, _ := newTestStore(t)

		ok, _ := store.Claim(ctx, "k", time.Hour)
		require.True(t, ok)
		require.NoError(t, store.Release(ctx, "k"))
		require.NoError(t, store.Release(ctx, "unknown"))

		ok, err := store.Claim(ctx, "k", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	store, now := newTestStore(t)

	_, _ = store.Claim(ctx, "short-1", time.Second)
	_, _ = store.Claim(ctx, "short-2", time.Second)
	_, _ = store.Claim(ctx, "long", time.Hour)
	assert.Equal(t, 3, store.Size())

	*now = now.Add(2 * time.Second)
	store.cleanup()
	assert.Equal(t, 1, store.Size())

	ok, err := store.Claim(ctx, "long", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryIdempotencyStore_ConcurrentClaims(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()
	const goroutines = 100

	results := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			ok, err := store.Claim(ctx, "same-key", time.Hour)
			results <- err == nil && ok
		}()
	}

	winners := 0
	for i := 0; i < goroutines; i++ {
		if <-results {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestInMemoryIdempotencyStore_Close(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
