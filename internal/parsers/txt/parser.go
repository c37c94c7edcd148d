// Package txt parses plain text files into normalised documents.
package txt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/logger"
)

// defaultTitle is used when no title can be derived from the filename.
const defaultTitle = "Unknown Title"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles plain text documents.
type Parser struct{}

// New creates a new plain text parser.
func New() *Parser {
	return &Parser{}
}

// FileType returns the format this parser handles.
func (p *Parser) FileType() domain.FileType {
	return domain.FileTypeTXT
}

// Parse reads the whole file as text. The title is the filename stem; text
// files carry no author, chapters, or cover. Pages are estimated by word
// count.
func (p *Parser) Parse(_ context.Context, path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("txt: reading %s: %v", path, err)
		return nil, fmt.Errorf("reading text file %s: %w", path, domain.ErrOpenDocument)
	}

	content := string(data)

	return &domain.Document{
		ID:         uuid.New().String(),
		Title:      titleFromPath(path),
		FilePath:   path,
		FileType:   domain.FileTypeTXT,
		Content:    content,
		TotalPages: domain.EstimatePages(content),
	}, nil
}

// titleFromPath extracts the filename stem as a human-readable title.
func titleFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return defaultTitle
	}
	return stem
}
