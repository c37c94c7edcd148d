// Package parsers wires the format parsers behind extension-based dispatch.
package parsers

import (
	"fmt"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/parsers/epub"
	"github.com/folio-reader/folio-cli/internal/parsers/pdf"
	"github.com/folio-reader/folio-cli/internal/parsers/txt"
)

// Registry selects a format parser from a file path. Selection is a pure
// function of the case-insensitive extension; an unknown extension is never
// retried with a different parser.
type Registry struct {
	parsers map[domain.FileType]driven.Parser
}

// NewRegistry creates a registry with the built-in EPUB, PDF, and TXT
// parsers registered.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[domain.FileType]driven.Parser)}
	r.Register(epub.New())
	r.Register(pdf.New())
	r.Register(txt.New())
	return r
}

// Register adds a parser, replacing any earlier parser for the same type.
func (r *Registry) Register(p driven.Parser) {
	r.parsers[p.FileType()] = p
}

// Resolve returns the parser for the path's extension, or an error wrapping
// domain.ErrUnsupportedFormat.
func (r *Registry) Resolve(path string) (driven.Parser, error) {
	fileType, err := domain.FileTypeFromPath(path)
	if err != nil {
		return nil, err
	}

	p, ok := r.parsers[fileType]
	if !ok {
		return nil, fmt.Errorf("%q: %w", fileType, domain.ErrUnsupportedFormat)
	}
	return p, nil
}
