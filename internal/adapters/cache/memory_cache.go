package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

// DefaultFreshness is the window during which a cached snapshot is served
// without re-aggregating.
const DefaultFreshness = 5 * time.Minute

var _ domain.SnapshotCache = (*MemorySnapshotCache)(nil)

// MemorySnapshotCache keeps serialized snapshots in process memory under one
// collective freshness timestamp: any Put re-opens the window for every
// entry, and once it elapses every Get misses. Snapshots are stored and
// returned in serialized form so callers can never mutate a cached value.
// The clock is injectable so the freshness boundary is testable.
type MemorySnapshotCache struct {
	mu            sync.RWMutex
	entries       map[string][]byte
	lastCacheTime time.Time

	freshness time.Duration
	now       func() time.Time
}

func NewMemorySnapshotCache(freshness time.Duration, now func() time.Time) *MemorySnapshotCache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	if now == nil {
		now = time.Now
	}
	return &MemorySnapshotCache{
		entries:   make(map[string][]byte),
		freshness: freshness,
		now:       now,
	}
}

func snapshotKey(username string, r domain.TimeRange) string {
	return fmt.Sprintf("%s_%s", username, r)
}

func (c *MemorySnapshotCache) Get(ctx context.Context, username string, r domain.TimeRange) (*domain.ProgressSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastCacheTime.IsZero() || c.now().Sub(c.lastCacheTime) >= c.freshness {
		return nil, false
	}

	data, ok := c.entries[snapshotKey(username, r)]
	if !ok {
		return nil, false
	}

	snap, err := domain.SnapshotFromJSON(data)
	if err != nil {
		return nil, false
	}

	return snap, true
}

func (c *MemorySnapshotCache) Put(ctx context.Context, username string, r domain.TimeRange, snap *domain.ProgressSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[snapshotKey(username, r)] = data
	c.lastCacheTime = c.now()
}

func (c *MemorySnapshotCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]byte)
	c.lastCacheTime = time.Time{}
}
