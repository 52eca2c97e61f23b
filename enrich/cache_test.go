package enrich

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionCacheSingleLeader(t *testing.T) {
	cache := NewCaptionCache()

	const workers = 16
	var leaders atomic.Int64
	results := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, leader := cache.claim("media/logo.png")
			if leader {
				leaders.Add(1)
				time.Sleep(5 * time.Millisecond)
				entry.resolve("the company logo", true)
				results[i] = "the company logo"
				return
			}
			caption, ok := entry.wait(context.Background())
			assert.True(t, ok)
			results[i] = caption
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), leaders.Load(), "exactly one goroutine may resolve a path")
	for _, got := range results {
		assert.Equal(t, "the company logo", got)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestCaptionCacheNegativeResult(t *testing.T) {
	cache := NewCaptionCache()

	entry, leader := cache.claim("media/broken.png")
	require.True(t, leader)
	entry.resolve("", false)

	again, leader := cache.claim("media/broken.png")
	require.False(t, leader, "failed paths stay claimed, they are not retried")

	caption, ok := again.wait(context.Background())
	assert.False(t, ok)
	assert.Empty(t, caption)
}

func TestCaptionCacheWaitCancellation(t *testing.T) {
	cache := NewCaptionCache()

	_, leader := cache.claim("media/slow.png")
	require.True(t, leader)

	entry, leader := cache.claim("media/slow.png")
	require.False(t, leader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caption, ok := entry.wait(ctx)
	assert.False(t, ok)
	assert.Empty(t, caption)
}

func TestCaptionCacheDistinctPaths(t *testing.T) {
	cache := NewCaptionCache()

	_, first := cache.claim("media/a.png")
	_, second := cache.claim("media/b.png")

	assert.True(t, first)
	assert.True(t, second)
	assert.Equal(t, 2, cache.Len())
}
