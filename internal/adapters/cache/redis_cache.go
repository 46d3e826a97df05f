package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

const (
	snapshotKeyPrefix = "progress:snapshot:"
	freshnessKey      = "progress:last_cache_time"
)

// NewRedisClient dials the cache instance and verifies it answers. Timeouts
// are deliberately tight: every redis failure downstream degrades to a cache
// miss and a re-aggregation, so a slow instance must not hold up requests.
// A failed ping here lets main fall back to the in-process cache instead.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}

var _ domain.SnapshotCache = (*RedisSnapshotCache)(nil)

// RedisSnapshotCache is the shared-instance variant of the snapshot cache.
// The single collective freshness timestamp lives under one redis key; a
// missing or expired freshness key means every entry is stale at once, and
// Invalidate only has to delete that key. Redis errors degrade to cache
// misses, never to aggregation failures.
type RedisSnapshotCache struct {
	rdb       *redis.Client
	freshness time.Duration
	now       func() time.Time
}

func NewRedisSnapshotCache(rdb *redis.Client, freshness time.Duration) *RedisSnapshotCache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &RedisSnapshotCache{
		rdb:       rdb,
		freshness: freshness,
		now:       time.Now,
	}
}

func (c *RedisSnapshotCache) Get(ctx context.Context, username string, r domain.TimeRange) (*domain.ProgressSnapshot, bool) {
	stamp, err := c.rdb.Get(ctx, freshnessKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] redis freshness read error: %v", err)
		}
		return nil, false
	}

	last, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil || c.now().Sub(last) >= c.freshness {
		return nil, false
	}

	key := snapshotKeyPrefix + snapshotKey(username, r)
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] redis read error: %v", err)
		}
		return nil, false
	}

	snap, err := domain.SnapshotFromJSON(data)
	if err != nil {
		log.Printf("[CACHE] corrupted snapshot for key %s, cleaning up", key)
		c.rdb.Del(ctx, key)
		return nil, false
	}

	return snap, true
}

func (c *RedisSnapshotCache) Put(ctx context.Context, username string, r domain.TimeRange, snap *domain.ProgressSnapshot) {
	key := snapshotKeyPrefix + snapshotKey(username, r)

	// entry TTL is hygiene only; freshness is governed by the shared stamp
	if err := c.rdb.Set(ctx, key, snap, 2*c.freshness).Err(); err != nil {
		log.Printf("[CACHE] redis set error: %v", err)
		return
	}

	stamp := c.now().UTC().Format(time.RFC3339Nano)
	if err := c.rdb.Set(ctx, freshnessKey, stamp, 2*c.freshness).Err(); err != nil {
		log.Printf("[CACHE] redis freshness set error: %v", err)
	}
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, freshnessKey).Err(); err != nil {
		log.Printf("[CACHE] redis invalidate error: %v", err)
	}
}
