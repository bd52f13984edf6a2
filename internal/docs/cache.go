package docs

import (
	"sync"
	"time"
)

// Cache memoizes one corpus. GetOrBuild serializes builds, so concurrent
// callers after an invalidation share a single rebuild. The zero value is
// ready to use.
type Cache struct {
	mu      sync.Mutex
	corpus  *Corpus
	builtAt time.Time
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrBuild returns the cached corpus, building it with build on a miss.
// A failed build leaves the cache empty.
func (c *Cache) GetOrBuild(build func() (*Corpus, error)) (corpus *Corpus, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.corpus != nil {
		return c.corpus, true, nil
	}
	corpus, err = build()
	if err != nil {
		return nil, false, err
	}
	c.corpus = corpus
	c.builtAt = time.Now()
	return corpus, false, nil
}

// Peek returns the cached corpus and when it was built, without building.
func (c *Cache) Peek() (*Corpus, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.corpus, c.builtAt
}

// Invalidate discards the cached corpus and reports whether one was held.
func (c *Cache) Invalidate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	had := c.corpus != nil
	c.corpus = nil
	c.builtAt = time.Time{}
	return had
}
