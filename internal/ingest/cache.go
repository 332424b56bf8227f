package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spacesedan/reviewlens/internal/models"
)

// Fingerprint identifies a corpus snapshot by the hex SHA-256 of its content.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Cache stores parsed corpora keyed by fingerprint. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, fingerprint string) ([]models.ReviewRecord, bool, error)
	Set(ctx context.Context, fingerprint string, records []models.ReviewRecord) error
	Invalidate(ctx context.Context, fingerprint string) error
}

// NoCache never stores anything.
type NoCache struct{}

func (NoCache) Get(context.Context, string) ([]models.ReviewRecord, bool, error) {
	return nil, false, nil
}

func (NoCache) Set(context.Context, string, []models.ReviewRecord) error { return nil }

func (NoCache) Invalidate(context.Context, string) error { return nil }

// MemoryCache keeps corpora in process with a TTL per entry.
// Cached slices are shared with callers and must be treated as read-only.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type cacheEntry struct {
	records   []models.ReviewRecord
	expiresAt time.Time
}

func (e *cacheEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryCache creates a cache whose entries expire after ttl.
// A ttl of zero keeps entries until they are invalidated.
func NewMemoryCache(ttl time.Duration, clock clockwork.Clock) *MemoryCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached records. An expired entry is removed on sight.
func (c *MemoryCache) Get(_ context.Context, fingerprint string) ([]models.ReviewRecord, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[fingerprint]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expired(c.clock.Now()) {
		return entry.records, true, nil
	}

	c.mu.Lock()
	if current, ok := c.entries[fingerprint]; ok && current.expired(c.clock.Now()) {
		delete(c.entries, fingerprint)
	}
	c.mu.Unlock()
	return nil, false, nil
}

func (c *MemoryCache) Set(_ context.Context, fingerprint string, records []models.ReviewRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{records: records}
	if c.ttl > 0 {
		entry.expiresAt = c.clock.Now().Add(c.ttl)
	}
	c.entries[fingerprint] = entry
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, fingerprint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fingerprint)
	return nil
}
