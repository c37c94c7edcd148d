package driven

import "github.com/folio-reader/folio-cli/internal/core/domain"

// DocumentCache is a bounded in-memory cache of fully parsed documents,
// keyed by document id. Implementations are safe for concurrent use and
// evict least-recently-used entries once capacity is reached.
type DocumentCache interface {
	// Get returns a copy of the cached document, promoting the entry.
	Get(id string) (*domain.Document, bool)

	// Put inserts or refreshes a document, evicting the least recently
	// used entry if the cache is full.
	Put(id string, doc *domain.Document)

	// Remove evicts a single entry, if present.
	Remove(id string)

	// Len returns the number of cached documents.
	Len() int
}
