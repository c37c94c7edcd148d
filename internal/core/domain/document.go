package domain

import "time"

// WordsPerPage is the heuristic used to estimate page counts for formats
// without intrinsic pagination (EPUB, TXT).
const WordsPerPage = 500

// Document is a parsed unit of reading material. It is the canonical
// representation produced by a format parser.
type Document struct {
	// ID is the unique identifier, generated at parse time. It is stable
	// only within one parse; callers correlate re-parses by file path.
	ID string

	// Title is the human-readable title.
	Title string

	// Author is the document author. Empty when the source carries none.
	Author string

	// FilePath is the location of the source file on disk.
	FilePath string

	// FileType identifies the source format.
	FileType FileType

	// Content is the full normalised plain-text body. All chapter and
	// position offsets are byte offsets into this string.
	Content string

	// CurrentPosition is the reading cursor into Content.
	CurrentPosition int

	// TotalPages is the page count: literal for PDF, estimated
	// (word count / WordsPerPage, minimum 1) otherwise.
	TotalPages int

	// Chapters holds the chapter index in document order. Empty for
	// formats without chapter support (PDF, TXT).
	Chapters []Chapter

	// CoverImage is a data-URI-encoded cover image. Empty when absent;
	// only the EPUB parser populates it.
	CoverImage string
}

// Chapter is a contiguous slice of a Document's Content, addressed by the
// half-open byte range [StartPosition, EndPosition).
type Chapter struct {
	// ID is derived from the source resource identifier plus the sequence
	// index, so ids stay unique even when the source reuses identifiers.
	ID string

	// Title is the extracted heading text or a synthesised "Chapter N".
	Title string

	// StartPosition is the inclusive byte offset where the chapter begins.
	StartPosition int

	// EndPosition is the exclusive byte offset where the chapter ends.
	EndPosition int
}

// Len returns the chapter's length in bytes.
func (c Chapter) Len() int {
	return c.EndPosition - c.StartPosition
}

// StoredDocument is the persisted library row: the identity and metadata
// subset of Document plus bookkeeping timestamps. CurrentPosition here is the
// saved reading progress, independent of any in-memory Document.
type StoredDocument struct {
	ID              string
	Title           string
	Author          string
	FilePath        string
	FileType        FileType
	TotalPages      int
	CurrentPosition int
	LastRead        time.Time
	AddedDate       time.Time
}

// ReadingProgress reports a reading position within a document.
// Percentage is derived from the position, never stored.
type ReadingProgress struct {
	DocumentID string
	Position   int
	Percentage float64
}

// EstimatePages returns the heuristic page count for plain text content:
// whitespace-delimited word count divided by WordsPerPage, floored, minimum 1.
func EstimatePages(content string) int {
	pages := countWords(content) / WordsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ProgressPercentage derives the fraction of content read from a byte
// position, clamped to [0, 1]. Empty content reports 0.
func ProgressPercentage(position, contentLen int) float64 {
	if contentLen <= 0 || position <= 0 {
		return 0
	}
	if position >= contentLen {
		return 1
	}
	return float64(position) / float64(contentLen)
}

func countWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}
