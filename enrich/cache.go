// Copyright 2026 Slidewise Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package enrich

import (
	"context"
	"sync"
)

// CaptionCache deduplicates caption requests within a single enrichment
// run. Decks reuse the same logo or template image on many slides; the
// cache guarantees each archive path is resolved and captioned at most
// once per run, outcome included. Failed attempts are cached too, so a
// broken asset is not retried on every slide that references it.
//
// The cache is keyed by normalized archive path and safe for concurrent
// use. Create a fresh cache per run; entries never expire.
type CaptionCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// cacheEntry holds one path's outcome. done closes once the leader has
// resolved the entry; caption and ok must not be read before then.
type cacheEntry struct {
	done    chan struct{}
	caption string
	ok      bool
}

// NewCaptionCache creates an empty per-run cache.
func NewCaptionCache() *CaptionCache {
	return &CaptionCache{entries: make(map[string]*cacheEntry)}
}

// claim registers interest in a path. The first caller for a path is
// the leader and must call resolve on the returned entry exactly once;
// later callers get leader=false and should wait on the entry instead.
func (c *CaptionCache) claim(path string) (*cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.entries[path]; exists {
		return entry, false
	}
	entry := &cacheEntry{done: make(chan struct{})}
	c.entries[path] = entry
	return entry, true
}

// Len returns the number of distinct paths seen so far.
func (c *CaptionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// resolve publishes the leader's outcome and releases all waiters.
func (e *cacheEntry) resolve(caption string, ok bool) {
	e.caption = caption
	e.ok = ok
	close(e.done)
}

// wait blocks until the entry is resolved or the context is canceled.
// Cancellation reads as a miss; the sweep treats it like any other
// failed caption.
func (e *cacheEntry) wait(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case <-e.done:
		return e.caption, e.ok
	}
}
