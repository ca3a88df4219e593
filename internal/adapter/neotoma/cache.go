package neotoma

import (
	"context"
	"fmt"
	"sync"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// CachedSource wraps a DatasetSource with an in-memory LRU cache over
// chronology lookups. Border sites appear in both the Canadian and the US
// scope, so their datasets would otherwise be fetched twice per run.
type CachedSource struct {
	inner domain.DatasetSource
	cache *lruCache
}

// NewCachedSource creates a cache decorator around a dataset source.
func NewCachedSource(inner domain.DatasetSource, maxEntries int) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: newLRUCache(maxEntries),
	}
}

// Datasets passes through: a scope is fetched once per run, and re-runs are
// served by the version's chronology cache file instead.
func (c *CachedSource) Datasets(ctx context.Context, country string) ([]domain.Site, error) {
	return c.inner.Datasets(ctx, country)
}

func (c *CachedSource) ChronControls(ctx context.Context, datasetID int) ([]domain.ChronControl, error) {
	key := fmt.Sprintf("chron:%d", datasetID)
	if controls, ok := c.cache.get(key); ok {
		return controls, nil
	}
	controls, err := c.inner.ChronControls(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	// Empty sequences are cached too: a dataset without controls stays
	// without controls for the lifetime of a run.
	c.cache.put(key, controls)
	return controls, nil
}

// lruCache is a simple thread-safe LRU cache for control sequences.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []domain.ChronControl
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]domain.ChronControl, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []domain.ChronControl) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
