package driving

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// ReaderService is the primary inbound port: opening documents, navigating
// chapters, reading content, searching, and tracking progress.
type ReaderService interface {
	// Open parses the file at path, persists its library metadata, warms
	// both cache tiers, and returns the parsed document.
	Open(ctx context.Context, path string) (*domain.Document, error)

	// Library returns all stored documents, most recently read first.
	Library(ctx context.Context) ([]domain.StoredDocument, error)

	// GetChapters resolves the chapter index for a stored document:
	// in-memory cache, then persistent chapter cache, then a full parse.
	GetChapters(ctx context.Context, documentID string) ([]domain.Chapter, error)

	// GetContent resolves the full text for a stored document:
	// in-memory cache, then a full parse.
	GetContent(ctx context.Context, documentID string) (string, error)

	// GetContentByPath resolves content for a file path. When the path
	// belongs to a stored document its caches are used; otherwise the
	// file is parsed directly.
	GetContentByPath(ctx context.Context, path string) (string, error)

	// Search performs a case-insensitive substring search over the
	// document's content, line by line, in document order.
	Search(ctx context.Context, documentID, query string) ([]domain.SearchMatch, error)

	// UpdateProgress persists a reading position and returns the derived
	// progress including its percentage.
	UpdateProgress(ctx context.Context, documentID string, position int) (*domain.ReadingProgress, error)

	// Progress returns the saved reading progress for a document.
	Progress(ctx context.Context, documentID string) (*domain.ReadingProgress, error)

	// Delete removes a document from the library and evicts it from both
	// cache tiers.
	Delete(ctx context.Context, documentID string) error
}
