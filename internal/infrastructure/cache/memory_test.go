package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skykart/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get returns the value", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "chat:hello", "Hello!", time.Minute))

		got, err := c.Get(ctx, "chat:hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello!", got)
	})

	t.Run("missing key returns ErrCacheMiss", func(t *testing.T) {
		c := NewMemoryCache()

		_, err := c.Get(ctx, "chat:nope")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("expired entry returns ErrCacheMiss", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "chat:short", "soon gone", 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)

		_, err := c.Get(ctx, "chat:short")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "chat:bye", "Goodbye!", time.Minute))
		require.NoError(t, c.Delete(ctx, "chat:bye"))

		_, err := c.Get(ctx, "chat:bye")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
		require.NoError(t, c.Set(ctx, "b", "2", time.Minute))
		assert.Equal(t, 2, c.Size())

		c.Clear()
		assert.Equal(t, 0, c.Size())
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "k", "old", time.Minute))
		require.NoError(t, c.Set(ctx, "k", "new", time.Minute))

		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "new", got)
	})
}
