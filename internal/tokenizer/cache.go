package tokenizer

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when NewCached is given a non-positive size
const DefaultCacheSize = 10000

// Cached memoizes counts of a wrapped Counter in an LRU keyed by the
// SHA-256 of the text. Repeated headers, boilerplate sentences and re-chunked
// documents are counted once.
type Cached struct {
	next  Counter
	cache *lru.Cache[[32]byte, int]
}

// NewCached wraps next with an LRU count cache
func NewCached(next Counter, maxLen int) *Cached {
	if maxLen <= 0 {
		maxLen = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, int](maxLen)
	if err != nil {
		// Should never happen with positive size, but fallback to default
		cache, _ = lru.New[[32]byte, int](DefaultCacheSize)
	}
	return &Cached{next: next, cache: cache}
}

// Count returns the cached count for text, computing it on a miss
func (c *Cached) Count(text string) int {
	if text == "" {
		return 0
	}
	key := sha256.Sum256([]byte(text))
	if n, ok := c.cache.Get(key); ok {
		return n
	}
	n := c.next.Count(text)
	c.cache.Add(key, n)
	return n
}

// Mode reports the wrapped counter's mode
func (c *Cached) Mode() Mode {
	return c.next.Mode()
}

// Size returns the current cache size
func (c *Cached) Size() int {
	return c.cache.Len()
}
