package timeparse

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"remindpro/internal/lang"
)

// CacheKey identifies one Parse call. Results are minute-precise, so the
// reference instant is keyed by minute.
type CacheKey struct {
	Text      string
	Lang      lang.Language
	Zone      string
	RefMinute int64
}

// Outcome is a cached Parse result, failures included.
type Outcome struct {
	Result Result
	Err    error
}

// Cache memoizes Parse outcomes. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key CacheKey) (Outcome, bool)
	Add(key CacheKey, out Outcome)
	Len() int
	Purge()
}

// LRUCache is a bounded cache whose entries also expire.
type LRUCache struct {
	lru *expirable.LRU[CacheKey, Outcome]
}

// NewLRUCache returns a cache holding at most size entries for ttl each.
// A zero ttl disables expiry.
func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	if size <= 0 {
		size = 1000
	}
	return &LRUCache{lru: expirable.NewLRU[CacheKey, Outcome](size, nil, ttl)}
}

func (c *LRUCache) Get(key CacheKey) (Outcome, bool) { return c.lru.Get(key) }
func (c *LRUCache) Add(key CacheKey, out Outcome)    { c.lru.Add(key, out) }
func (c *LRUCache) Len() int                         { return c.lru.Len() }
func (c *LRUCache) Purge()                           { c.lru.Purge() }

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(CacheKey) (Outcome, bool) { return Outcome{}, false }
func (NopCache) Add(CacheKey, Outcome)        {}
func (NopCache) Len() int                     { return 0 }
func (NopCache) Purge()                       {}
