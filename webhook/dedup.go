package webhook

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultDedupTTL exceeds Twitch's own webhook retry window (spec §4.6
// step 3: "default ~400 s"). This is also the conservative reconnect
// overlap window spec §9's open question defers to: accept duplicates
// for the full dedup TTL rather than attempt to bound the predecessor/
// successor overlap more precisely.
const DefaultDedupTTL = 400 * time.Second

// DedupCache is the narrow contract spec §9 calls for: "get(id) -> bool,
// put(id, ttl)". Implementations need not be concurrency-safe on their
// own network boundary, but must be safe for concurrent Go calls, since
// many HTTP handler goroutines share one instance.
type DedupCache interface {
	// SeenBefore reports whether id was already recorded, and records it
	// if not, atomically with respect to other callers.
	SeenBefore(id string) bool
}

// GoCacheDedup is the default in-memory DedupCache, grounded on
// github.com/patrickmn/go-cache's TTL-evicting map — the same shape of
// library the pack's prysm repo uses for short-lived idempotency keys.
// Per spec §1's non-goal "concrete persistence for webhook dedup is out
// of scope", this is explicitly in-memory only; a horizontally-scaled
// deployment needing cross-process dedup must supply its own DedupCache.
type GoCacheDedup struct {
	cache *cache.Cache
}

// NewGoCacheDedup builds a GoCacheDedup with the given TTL. Pass
// DefaultDedupTTL unless the deployment has a documented reason to
// differ from Twitch's retry window.
func NewGoCacheDedup(ttl time.Duration) *GoCacheDedup {
	return &GoCacheDedup{cache: cache.New(ttl, ttl/2)}
}

// SeenBefore implements DedupCache. Uses Add rather than Get-then-
// SetDefault so the check-and-record is atomic under go-cache's own
// locking, closing the narrow race two simultaneous deliveries of the
// same message ID could otherwise hit.
func (d *GoCacheDedup) SeenBefore(id string) bool {
	err := d.cache.Add(id, struct{}{}, cache.DefaultExpiration)
	return err != nil
}
