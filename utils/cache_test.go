package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheEviction(t *testing.T) {
	cache := NewCache[string, int](2)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	_, ok := cache.Get("a")
	require.False(t, ok)
	v, ok := cache.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	v, ok = cache.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestCacheUpdateExistingKey(t *testing.T) {
	cache := NewCache[string, int](2)

	cache.Add("a", 1)
	cache.Add("a", 10)
	cache.Add("b", 2)

	v, ok := cache.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
}

func TestTimedCache(t *testing.T) {
	cache := NewTimedCache[int](time.Minute)
	now := time.Now()

	_, ok := cache.Get(now)
	require.False(t, ok)

	cache.Set(42, now)
	v, ok := cache.Get(now.Add(59 * time.Second))
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = cache.Get(now.Add(time.Minute))
	require.False(t, ok)
}

func TestTimedCacheInvalidate(t *testing.T) {
	cache := NewTimedCache[int](time.Minute)
	now := time.Now()

	cache.Set(42, now)
	cache.Invalidate()
	_, ok := cache.Get(now)
	require.False(t, ok)

	cache.Set(7, now)
	v, ok := cache.Get(now)
	require.True(t, ok)
	require.Equal(t, 7, v)
}
