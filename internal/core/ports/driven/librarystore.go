package driven

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// LibraryStore persists document metadata independent of parsed content.
// Backed by SQLite.
type LibraryStore interface {
	// Save stores or updates a library row. FilePath is unique; saving a
	// document with a known path replaces the earlier row.
	Save(ctx context.Context, doc *domain.StoredDocument) error

	// Get retrieves a stored document by id.
	Get(ctx context.Context, id string) (*domain.StoredDocument, error)

	// GetByPath retrieves a stored document by file path.
	GetByPath(ctx context.Context, path string) (*domain.StoredDocument, error)

	// List returns all stored documents, most recently read first.
	List(ctx context.Context) ([]domain.StoredDocument, error)

	// UpdateProgress saves the reading position and bumps last_read.
	UpdateProgress(ctx context.Context, id string, position int) error

	// Delete removes a stored document.
	Delete(ctx context.Context, id string) error
}
