// Package cache keeps recently fetched parcel pages in memory so a batch that
// revisits the same URL does not hit the appraiser site twice.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/pkg/models"
)

// Cache stores snapshots by key.
type Cache interface {
	// Get returns the snapshot stored under key, if present and not expired.
	Get(key string) (*models.Snapshot, bool)

	// Set stores a snapshot with the given TTL, replacing any previous entry.
	Set(key string, snap *models.Snapshot, ttl time.Duration) error

	Delete(key string) error
	Clear() error

	// Close stops background cleanup.
	Close()
}

type entry struct {
	key       string
	snap      *models.Snapshot
	size      int64
	expiresAt time.Time
}

// MemoryCache is an LRU cache bounded by an approximate byte size.
type MemoryCache struct {
	mu      sync.Mutex
	store   map[string]*list.Element
	lru     *list.List
	maxSize int64
	size    int64
	hits    uint64
	misses  uint64
	cancel  context.CancelFunc
}

// DefaultMaxSize is used when NewMemoryCache gets a non-positive size.
const DefaultMaxSize = 64 * 1024 * 1024

// NewMemoryCache creates a cache holding at most maxSizeBytes of page data.
func NewMemoryCache(maxSizeBytes int64) *MemoryCache {
	if maxSizeBytes <= 0 {
		maxSizeBytes = DefaultMaxSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemoryCache{
		store:   make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSizeBytes,
		cancel:  cancel,
	}
	go mc.cleanupExpired(ctx, time.Minute)
	return mc
}

// Get returns a cached snapshot and marks it most recently used.
func (mc *MemoryCache) Get(key string) (*models.Snapshot, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	el, ok := mc.store[key]
	if !ok {
		mc.misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if time.Now().After(e.expiresAt) {
		mc.misses++
		mc.remove(el)
		return nil, false
	}

	mc.lru.MoveToFront(el)
	mc.hits++
	log.Debug().Str("key", key).Msg("Cache hit")
	return e.snap, true
}

// Set stores snap under key. Entries larger than the whole cache are skipped.
func (mc *MemoryCache) Set(key string, snap *models.Snapshot, ttl time.Duration) error {
	if snap == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	size := sizeOf(snap)

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if el, ok := mc.store[key]; ok {
		mc.remove(el)
	}
	if size > mc.maxSize {
		log.Debug().Str("key", key).Int64("size_bytes", size).Msg("Snapshot larger than cache, not stored")
		return nil
	}
	for mc.size+size > mc.maxSize && mc.lru.Len() > 0 {
		mc.evictLRU()
	}

	el := mc.lru.PushFront(&entry{
		key:       key,
		snap:      snap,
		size:      size,
		expiresAt: time.Now().Add(ttl),
	})
	mc.store[key] = el
	mc.size += size

	log.Debug().
		Str("key", key).
		Dur("ttl", ttl).
		Int64("size_bytes", size).
		Msg("Cached snapshot")
	return nil
}

// Delete removes key; a missing key is not an error.
func (mc *MemoryCache) Delete(key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if el, ok := mc.store[key]; ok {
		mc.remove(el)
	}
	return nil
}

// Clear removes every entry and resets the counters.
func (mc *MemoryCache) Clear() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.store = make(map[string]*list.Element)
	mc.lru.Init()
	mc.size = 0
	mc.hits = 0
	mc.misses = 0
	return nil
}

// Close stops the cleanup goroutine.
func (mc *MemoryCache) Close() {
	mc.cancel()
}

// Stats reports entry count, size and hit counters.
type Stats struct {
	Entries int
	Size    int64
	MaxSize int64
	Hits    uint64
	Misses  uint64
}

// HitRate is the share of lookups served from the cache, in percent.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Stats returns a copy of the current counters.
func (mc *MemoryCache) Stats() Stats {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return Stats{
		Entries: mc.lru.Len(),
		Size:    mc.size,
		MaxSize: mc.maxSize,
		Hits:    mc.hits,
		Misses:  mc.misses,
	}
}

// must be called with mu held
func (mc *MemoryCache) remove(el *list.Element) {
	e := el.Value.(*entry)
	mc.lru.Remove(el)
	delete(mc.store, e.key)
	mc.size -= e.size
}

// must be called with mu held
func (mc *MemoryCache) evictLRU() {
	el := mc.lru.Back()
	if el == nil {
		return
	}
	log.Debug().Str("key", el.Value.(*entry).key).Msg("Evicted from cache (LRU)")
	mc.remove(el)
}

func (mc *MemoryCache) cleanupExpired(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			now := time.Now()
			var next *list.Element
			for el := mc.lru.Front(); el != nil; el = next {
				next = el.Next()
				if now.After(el.Value.(*entry).expiresAt) {
					mc.remove(el)
				}
			}
			mc.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// roughly the page bytes plus struct overhead
func sizeOf(s *models.Snapshot) int64 {
	return int64(len(s.HTML)+len(s.Title)+len(s.URL)) + 512
}
