package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// MemCache is the first leaderboard tier: a small in-process cache that
// absorbs repeated reads between Redis round trips.
type MemCache struct {
	entries       sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates a memory cache with its cleanup worker running.
func NewMemCache() *MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background sweep of expired entries.
func (mc *MemCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup drops every entry past its expiry.
func (mc *MemCache) cleanup() {
	now := time.Now()
	mc.entries.Range(func(key, value any) bool {
		if now.After(value.(*memCacheEntry).expiresAt) {
			mc.entries.Delete(key)
		}
		return true
	})
}

// Close stops the cleanup worker.
func (mc *MemCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the cached value, or nil when missing or expired.
func (mc *MemCache) Get(key string) any {
	value, exists := mc.entries.Load(key)
	if !exists {
		return nil
	}

	entry := value.(*memCacheEntry)
	if time.Now().After(entry.expiresAt) {
		mc.entries.Delete(key)
		return nil
	}

	return entry.value
}

// Set stores a value under the key for the given TTL.
func (mc *MemCache) Set(key string, value any, ttl time.Duration) {
	mc.entries.Store(key, &memCacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

// Delete drops a key, used when a finalize or archival invalidates a
// leaderboard.
func (mc *MemCache) Delete(key string) {
	mc.entries.Delete(key)
}
