package content

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultCacheEntries = 256

// sharedReadTimeout bounds an upstream read once it no longer follows the
// cancellation of the caller that started it.
const sharedReadTimeout = 30 * time.Second

type cacheEntry struct {
	raw     json.RawMessage
	expires time.Time
}

// resultCache keeps successful raw results for a fixed time and collapses
// concurrent misses for the same key into one upstream read.
type resultCache struct {
	ttl        time.Duration
	now        func() time.Time
	maxEntries int

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	if ttl <= 0 {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	return &resultCache{
		ttl:        ttl,
		now:        now,
		maxEntries: defaultCacheEntries,
		entries:    make(map[string]cacheEntry),
	}
}

// cacheKey combines the query text with its canonical parameter encoding.
func cacheKey(q Query) (string, error) {
	if len(q.Params) == 0 {
		return q.GROQ, nil
	}
	// encoding/json sorts map keys.
	params, err := json.Marshal(q.Params)
	if err != nil {
		return "", err
	}
	return q.GROQ + "\x00" + string(params), nil
}

// load returns a fresh cached result or calls read once for all concurrent
// callers. Failed and null results are never stored.
//
// The shared read is detached from the cancellation of whichever caller
// started it; each caller stops waiting when its own ctx is done.
func (c *resultCache) load(ctx context.Context, key string, read func(context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	if raw, ok := c.get(key); ok {
		return raw, nil
	}
	results := c.group.DoChan(key, func() (any, error) {
		if raw, ok := c.get(key); ok {
			return raw, nil
		}
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedReadTimeout)
		defer cancel()
		raw, err := read(readCtx)
		if err != nil {
			return nil, err
		}
		if !isNull(raw) {
			c.put(key, raw)
		}
		return raw, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(json.RawMessage), nil
	}
}

func (c *resultCache) get(key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.raw, true
}

func (c *resultCache) put(key string, raw json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.entries[key] = cacheEntry{raw: raw, expires: now.Add(c.ttl)}
}

// evictLocked drops expired entries, or the entry closest to expiry when
// none have expired.
func (c *resultCache) evictLocked(now time.Time) {
	oldestKey := ""
	var oldest time.Time
	for key, entry := range c.entries {
		if !now.Before(entry.expires) {
			delete(c.entries, key)
			continue
		}
		if oldestKey == "" || entry.expires.Before(oldest) {
			oldestKey, oldest = key, entry.expires
		}
	}
	if len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
