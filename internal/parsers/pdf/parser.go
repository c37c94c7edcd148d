// Package pdf parses PDF files into normalised documents.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/logger"
)

// defaultTitle is used when the information dictionary carries no title.
const defaultTitle = "Unknown Title"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles PDF documents.
type Parser struct{}

// New creates a new PDF parser.
func New() *Parser {
	return &Parser{}
}

// FileType returns the format this parser handles.
func (p *Parser) FileType() domain.FileType {
	return domain.FileTypePDF
}

// Parse loads the PDF at path and extracts text from every page in page
// order. Per-page extraction failures are skipped; only an unreadable or
// structurally invalid file fails the parse. PDFs carry no chapter index or
// cover image, and TotalPages is the literal page count rather than the
// word-count heuristic.
func (p *Parser) Parse(_ context.Context, path string) (*domain.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		logger.Warn("pdf: opening %s: %v", path, err)
		return nil, fmt.Errorf("opening pdf %s: %w", path, domain.ErrOpenDocument)
	}
	defer f.Close()

	title, author := documentInfo(reader)

	pageCount := reader.NumPage()
	var content strings.Builder
	for i := 1; i <= pageCount; i++ {
		text, ok := pageText(reader, i)
		if !ok {
			logger.Warn("pdf: skipping page %d of %s", i, path)
			continue
		}
		content.WriteString(text)
		content.WriteString("\n\n")
	}

	return &domain.Document{
		ID:         uuid.New().String(),
		Title:      title,
		Author:     author,
		FilePath:   path,
		FileType:   domain.FileTypePDF,
		Content:    normalizeLines(content.String()),
		TotalPages: pageCount,
	}, nil
}

// pageText extracts plain text from a single page. The underlying library
// can panic on malformed content streams, so extraction is isolated behind
// a recover; any failure reports ok=false and the page is skipped.
func pageText(reader *pdf.Reader, number int) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return "", false
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}
	return text, true
}

// documentInfo reads Title and Author from the information dictionary.
// Fields that are absent or not decodable as text are tolerated: the title
// falls back to the default and the author stays empty.
func documentInfo(reader *pdf.Reader) (title, author string) {
	title = defaultTitle

	info := trailerInfo(reader)
	if info.IsNull() {
		return title, ""
	}

	if t := stringValue(info, "Title"); t != "" {
		title = t
	}
	author = stringValue(info, "Author")
	return title, author
}

// trailerInfo fetches the Info dictionary, absorbing panics from corrupt
// trailers.
func trailerInfo(reader *pdf.Reader) (v pdf.Value) {
	defer func() {
		if r := recover(); r != nil {
			v = pdf.Value{}
		}
	}()
	return reader.Trailer().Key("Info")
}

// stringValue reads a string entry from a dictionary value, returning ""
// for missing or non-string entries.
func stringValue(dict pdf.Value, key string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = ""
		}
	}()

	v := dict.Key(key)
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// normalizeLines trims every line and drops empty ones, rejoining with
// newlines. Unlike the markup stripper this keeps line structure, since PDF
// extraction already yields plausible line breaks.
func normalizeLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
