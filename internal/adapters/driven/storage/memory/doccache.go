package memory

import (
	"container/list"
	"sync"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// DefaultCacheCapacity bounds the document cache when no capacity is
// configured. Parsed documents hold their full content, so the bound is
// deliberately small.
const DefaultCacheCapacity = 5

// Ensure DocumentCache implements the interface.
var _ driven.DocumentCache = (*DocumentCache)(nil)

// DocumentCache is a bounded in-memory cache of parsed documents with
// least-recently-used eviction. Eviction order is an explicit contract:
// Get and Put promote an entry, and inserting beyond capacity always evicts
// the least recently used entry, never the one just inserted.
//
// All methods are safe for concurrent use; every critical section is a
// short map/list operation with documents cloned out, so no caller ever
// holds a reference into the cache.
type DocumentCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

// cacheEntry is the list element payload.
type cacheEntry struct {
	id  string
	doc domain.Document
}

// NewDocumentCache creates a cache bounded to capacity entries.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewDocumentCache(capacity int) *DocumentCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &DocumentCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns a copy of the cached document and promotes the entry.
func (c *DocumentCache) Get(id string) (*domain.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)

	doc := cloneDocument(&elem.Value.(*cacheEntry).doc)
	return doc, true
}

// Put inserts or refreshes a document. Inserting a new entry at capacity
// evicts the least recently used one first.
func (c *DocumentCache) Put(id string, doc *domain.Document) {
	if doc == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[id]; ok {
		elem.Value.(*cacheEntry).doc = *cloneDocument(doc)
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	elem := c.order.PushFront(&cacheEntry{id: id, doc: *cloneDocument(doc)})
	c.entries[id] = elem
}

// Remove evicts a single entry, if present.
func (c *DocumentCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[id]; ok {
		c.order.Remove(elem)
		delete(c.entries, id)
	}
}

// Len returns the number of cached documents.
func (c *DocumentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// evictOldest removes the back of the order list (caller must hold lock).
func (c *DocumentCache) evictOldest() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	delete(c.entries, back.Value.(*cacheEntry).id)
}

// cloneDocument deep-copies a document so cache entries and callers never
// share chapter slices.
func cloneDocument(doc *domain.Document) *domain.Document {
	clone := *doc
	if doc.Chapters != nil {
		clone.Chapters = append([]domain.Chapter(nil), doc.Chapters...)
	}
	return &clone
}
