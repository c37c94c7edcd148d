package memory

import (
	"context"
	"sync"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// Ensure ChapterCache implements the interface.
var _ driven.ChapterCache = (*ChapterCache)(nil)

// ChapterCache is an in-memory implementation of driven.ChapterCache,
// used in tests.
type ChapterCache struct {
	mu       sync.RWMutex
	chapters map[string][]domain.Chapter
}

// NewChapterCache creates a new in-memory chapter cache.
func NewChapterCache() *ChapterCache {
	return &ChapterCache{chapters: make(map[string][]domain.Chapter)}
}

// SaveChapters replaces the cached chapter sequence for a document.
func (c *ChapterCache) SaveChapters(_ context.Context, documentID string, chapters []domain.Chapter) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chapters[documentID] = append([]domain.Chapter(nil), chapters...)
	return nil
}

// GetChapters returns the cached chapters in their original order.
func (c *ChapterCache) GetChapters(_ context.Context, documentID string) ([]domain.Chapter, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	chapters, ok := c.chapters[documentID]
	if !ok || len(chapters) == 0 {
		return nil, domain.ErrNotFound
	}
	return append([]domain.Chapter(nil), chapters...), nil
}

// Clear removes the cached chapters for a document.
func (c *ChapterCache) Clear(_ context.Context, documentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.chapters, documentID)
	return nil
}
