package driven

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// Parser converts a file on disk into a normalised Document.
// Each parser handles exactly one file type; selection is by extension.
//
// Parsers tolerate partial failures inside a document (a single bad chapter
// or page is skipped, not fatal), but report unreadable or structurally
// invalid files as errors wrapping domain.ErrOpenDocument.
type Parser interface {
	// FileType returns the format this parser handles.
	FileType() domain.FileType

	// Parse reads the file at path and returns a Document with a freshly
	// generated id. Parsing is synchronous and honours no cancellation
	// beyond what ctx-aware I/O provides.
	Parse(ctx context.Context, path string) (*domain.Document, error)
}
