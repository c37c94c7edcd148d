// Package epub parses EPUB containers into normalised documents.
package epub

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/simp-lee/epub"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/logger"
	"github.com/folio-reader/folio-cli/internal/parsers/markup"
)

// defaultTitle is used when the container metadata carries no title.
const defaultTitle = "Unknown Title"

// chapterSeparator joins stripped chapter texts in the assembled content.
const chapterSeparator = "\n\n"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles EPUB documents.
type Parser struct{}

// New creates a new EPUB parser.
func New() *Parser {
	return &Parser{}
}

// FileType returns the format this parser handles.
func (p *Parser) FileType() domain.FileType {
	return domain.FileTypeEPUB
}

// Parse opens the container at path and assembles a Document: the spine is
// walked in reading order, each resolvable entry is stripped of markup and
// appended to the content with its byte range recorded as a chapter. A
// single unresolvable entry is skipped, never fatal.
func (p *Parser) Parse(_ context.Context, path string) (*domain.Document, error) {
	book, err := epub.Open(path)
	if err != nil {
		logger.Warn("epub: opening %s: %v", path, err)
		return nil, fmt.Errorf("opening epub %s: %w", path, domain.ErrOpenDocument)
	}
	defer book.Close()

	meta := book.Metadata()
	title := defaultTitle
	if len(meta.Titles) > 0 && strings.TrimSpace(meta.Titles[0]) != "" {
		title = strings.TrimSpace(meta.Titles[0])
	}
	var author string
	if len(meta.Authors) > 0 {
		author = strings.TrimSpace(meta.Authors[0].Name)
	}

	var content strings.Builder
	var chapters []domain.Chapter

	for i, entry := range book.Chapters() {
		raw, err := book.ReadFile(entry.Href)
		if err != nil {
			// Partial-content tolerance: one bad resource must not
			// lose the whole book.
			logger.Warn("epub: skipping spine entry %q: %v", entry.Href, err)
			continue
		}

		start := content.Len()
		content.WriteString(markup.Strip(string(raw)))
		content.WriteString(chapterSeparator)
		end := content.Len()

		chapters = append(chapters, domain.Chapter{
			// Resource ids may repeat across spine entries; the
			// sequence index keeps chapter ids unique.
			ID:            fmt.Sprintf("%s_%d", entry.ID, i),
			Title:         chapterTitle(string(raw), i+1),
			StartPosition: start,
			EndPosition:   end,
		})
	}

	text := content.String()

	return &domain.Document{
		ID:         uuid.New().String(),
		Title:      title,
		Author:     author,
		FilePath:   path,
		FileType:   domain.FileTypeEPUB,
		Content:    text,
		TotalPages: domain.EstimatePages(text),
		Chapters:   chapters,
		CoverImage: coverDataURI(book),
	}, nil
}

// chapterTitle extracts a heading from the raw (unstripped) markup, falling
// back to a synthesised "Chapter N" with the 1-based sequence number.
func chapterTitle(raw string, number int) string {
	if title := markup.ExtractHeading(raw); title != "" {
		return title
	}
	return fmt.Sprintf("Chapter %d", number)
}

// coverDataURI returns the cover image as a data URI, or an empty string.
// A missing cover is not an error. The MIME type is sniffed from magic bytes
// rather than trusted from the manifest.
func coverDataURI(book *epub.Book) string {
	cover, err := book.Cover()
	if err != nil || len(cover.Data) == 0 {
		return ""
	}

	return fmt.Sprintf("data:%s;base64,%s",
		sniffImageMIME(cover.Data),
		base64.StdEncoding.EncodeToString(cover.Data))
}

// sniffImageMIME identifies PNG, JPEG, and WEBP by magic bytes, defaulting
// to JPEG for anything unrecognised.
func sniffImageMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("\xFF\xD8")):
		return "image/jpeg"
	case len(data) >= 12 && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
