package driven

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// ChapterCache durably stores the chapter index of a document so chapter
// navigation after a restart does not require re-parsing the source file.
// Only the structural index is kept, never content.
type ChapterCache interface {
	// SaveChapters replaces the cached chapter sequence for a document.
	// A failed replacement degrades to a cache miss, never to corruption.
	SaveChapters(ctx context.Context, documentID string, chapters []domain.Chapter) error

	// GetChapters returns the cached chapters in their original order.
	// A document with no cached chapters reports domain.ErrNotFound.
	GetChapters(ctx context.Context, documentID string) ([]domain.Chapter, error)

	// Clear removes the cached chapters for a document.
	Clear(ctx context.Context, documentID string) error
}
