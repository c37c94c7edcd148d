package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/core/ports/driving"
	"github.com/folio-reader/folio-cli/internal/logger"
)

// Ensure ReaderService implements the interface.
var _ driving.ReaderService = (*ReaderService)(nil)

// ParserResolver selects a format parser for a file path.
type ParserResolver interface {
	Resolve(path string) (driven.Parser, error)
}

// ReaderService implements the reading workflow on top of the parser
// registry and the two cache tiers. Resolution order for document state is
// always in-memory cache, then persistent stores, then a full re-parse.
type ReaderService struct {
	parsers      ParserResolver
	library      driven.LibraryStore
	chapterCache driven.ChapterCache
	docCache     driven.DocumentCache

	// parseGroup coalesces concurrent parses of the same file so a large
	// document is only parsed once per cache miss storm.
	parseGroup singleflight.Group
}

// NewReaderService creates a new reader service.
func NewReaderService(
	parsers ParserResolver,
	library driven.LibraryStore,
	chapterCache driven.ChapterCache,
	docCache driven.DocumentCache,
) *ReaderService {
	return &ReaderService{
		parsers:      parsers,
		library:      library,
		chapterCache: chapterCache,
		docCache:     docCache,
	}
}

// Open parses the file at path, persists its library metadata, warms both
// cache tiers, and returns the parsed document. Re-opening a known path
// keeps the stored id and reading position.
func (s *ReaderService) Open(ctx context.Context, path string) (*domain.Document, error) {
	doc, err := s.parse(ctx, path)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := &domain.StoredDocument{
		ID:         doc.ID,
		Title:      doc.Title,
		Author:     doc.Author,
		FilePath:   doc.FilePath,
		FileType:   doc.FileType,
		TotalPages: doc.TotalPages,
		LastRead:   now,
		AddedDate:  now,
	}

	// A known path keeps its identity and progress across re-opens.
	if existing, err := s.library.GetByPath(ctx, path); err == nil {
		stored.ID = existing.ID
		stored.CurrentPosition = existing.CurrentPosition
		stored.AddedDate = existing.AddedDate
		doc.ID = existing.ID
		doc.CurrentPosition = existing.CurrentPosition
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up library entry: %w", err)
	}

	if err := s.library.Save(ctx, stored); err != nil {
		return nil, fmt.Errorf("saving library entry: %w", err)
	}

	s.warmCaches(ctx, doc)

	return doc, nil
}

// Library returns all stored documents, most recently read first.
func (s *ReaderService) Library(ctx context.Context) ([]domain.StoredDocument, error) {
	return s.library.List(ctx)
}

// GetChapters resolves the chapter index for a stored document. The
// persistent chapter cache answers without re-parsing; only a miss on both
// tiers triggers a parse.
func (s *ReaderService) GetChapters(ctx context.Context, documentID string) ([]domain.Chapter, error) {
	if doc, ok := s.docCache.Get(documentID); ok {
		logger.Debug("chapters for %s served from document cache", documentID)
		return doc.Chapters, nil
	}

	chapters, err := s.chapterCache.GetChapters(ctx, documentID)
	if err == nil {
		logger.Debug("chapters for %s served from chapter cache", documentID)
		return chapters, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("reading chapter cache: %w", err)
	}

	doc, err := s.resolve(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return doc.Chapters, nil
}

// GetContent resolves the full text for a stored document.
func (s *ReaderService) GetContent(ctx context.Context, documentID string) (string, error) {
	doc, err := s.resolve(ctx, documentID)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// GetContentByPath resolves content for a file path. Paths known to the
// library go through the cached id-based path; unknown paths are parsed
// directly without being imported.
func (s *ReaderService) GetContentByPath(ctx context.Context, path string) (string, error) {
	stored, err := s.library.GetByPath(ctx, path)
	if err == nil {
		return s.GetContent(ctx, stored.ID)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("looking up library entry: %w", err)
	}

	doc, err := s.parse(ctx, path)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// Search performs a case-insensitive substring search over the document's
// content, line by line, in document order.
func (s *ReaderService) Search(ctx context.Context, documentID, query string) ([]domain.SearchMatch, error) {
	doc, err := s.resolve(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return domain.SearchContent(doc.Content, query), nil
}

// UpdateProgress persists a reading position and returns the derived
// progress including its percentage.
func (s *ReaderService) UpdateProgress(ctx context.Context, documentID string, position int) (*domain.ReadingProgress, error) {
	if position < 0 {
		return nil, fmt.Errorf("position %d: %w", position, domain.ErrInvalidInput)
	}

	if err := s.library.UpdateProgress(ctx, documentID, position); err != nil {
		return nil, err
	}

	doc, err := s.resolve(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.CurrentPosition = position
	s.docCache.Put(documentID, doc)

	return &domain.ReadingProgress{
		DocumentID: documentID,
		Position:   position,
		Percentage: domain.ProgressPercentage(position, len(doc.Content)),
	}, nil
}

// Progress returns the saved reading progress for a document.
func (s *ReaderService) Progress(ctx context.Context, documentID string) (*domain.ReadingProgress, error) {
	stored, err := s.library.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	doc, err := s.resolve(ctx, documentID)
	if err != nil {
		return nil, err
	}

	return &domain.ReadingProgress{
		DocumentID: documentID,
		Position:   stored.CurrentPosition,
		Percentage: domain.ProgressPercentage(stored.CurrentPosition, len(doc.Content)),
	}, nil
}

// Delete removes a document from the library and evicts it from both cache
// tiers.
func (s *ReaderService) Delete(ctx context.Context, documentID string) error {
	if err := s.library.Delete(ctx, documentID); err != nil {
		return err
	}

	s.docCache.Remove(documentID)
	if err := s.chapterCache.Clear(ctx, documentID); err != nil {
		logger.Warn("clearing chapter cache for %s: %v", documentID, err)
	}
	return nil
}

// resolve returns the full document for a stored id: document cache first,
// then a re-parse of the stored file path.
func (s *ReaderService) resolve(ctx context.Context, documentID string) (*domain.Document, error) {
	if doc, ok := s.docCache.Get(documentID); ok {
		return doc, nil
	}

	stored, err := s.library.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	doc, err := s.parse(ctx, stored.FilePath)
	if err != nil {
		return nil, err
	}

	// The parse generated a fresh id; restore the stored identity so the
	// caches stay keyed consistently.
	doc.ID = stored.ID
	doc.CurrentPosition = stored.CurrentPosition

	s.warmCaches(ctx, doc)

	return doc, nil
}

// parse runs the format parser for path, coalescing concurrent calls for
// the same file. The shared result is cloned per caller.
func (s *ReaderService) parse(ctx context.Context, path string) (*domain.Document, error) {
	v, err, shared := s.parseGroup.Do(path, func() (any, error) {
		parser, err := s.parsers.Resolve(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsing %s", path)
		return parser.Parse(ctx, path)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("parse of %s shared with a concurrent caller", path)
	}

	doc := *v.(*domain.Document)
	doc.Chapters = append([]domain.Chapter(nil), v.(*domain.Document).Chapters...)
	return &doc, nil
}

// warmCaches populates both cache tiers for a freshly parsed document.
// Chapter cache failures are logged, not fatal; the next lookup re-parses.
func (s *ReaderService) warmCaches(ctx context.Context, doc *domain.Document) {
	s.docCache.Put(doc.ID, doc)

	if len(doc.Chapters) == 0 {
		return
	}
	if err := s.chapterCache.SaveChapters(ctx, doc.ID, doc.Chapters); err != nil {
		logger.Warn("caching chapters for %s: %v", doc.ID, err)
	}
}
