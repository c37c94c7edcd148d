package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-reader/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// mockParser returns a canned document and counts how often it runs.
type mockParser struct {
	parses atomic.Int64
	doc    domain.Document
	err    error
}

func (m *mockParser) FileType() domain.FileType { return domain.FileTypeEPUB }

func (m *mockParser) Parse(_ context.Context, path string) (*domain.Document, error) {
	m.parses.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	doc := m.doc
	doc.FilePath = path
	doc.Chapters = append([]domain.Chapter(nil), m.doc.Chapters...)
	return &doc, nil
}

// mockResolver routes every path to a single parser, or fails.
type mockResolver struct {
	parser driven.Parser
	err    error
}

func (m *mockResolver) Resolve(string) (driven.Parser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.parser, nil
}

func testParser() *mockParser {
	return &mockParser{
		doc: domain.Document{
			ID:       "parsed-id",
			Title:    "Test Book",
			Author:   "Jane Tester",
			FileType: domain.FileTypeEPUB,
			Content:  "chapter one text\n\nchapter two text\n\n",
			Chapters: []domain.Chapter{
				{ID: "c_0", Title: "One", StartPosition: 0, EndPosition: 18},
				{ID: "c_1", Title: "Two", StartPosition: 18, EndPosition: 36},
			},
			TotalPages: 1,
		},
	}
}

func newTestService(parser *mockParser) (*ReaderService, *memory.LibraryStore, *memory.ChapterCache, *memory.DocumentCache) {
	library := memory.NewLibraryStore()
	chapterCache := memory.NewChapterCache()
	docCache := memory.NewDocumentCache(memory.DefaultCacheCapacity)
	svc := NewReaderService(&mockResolver{parser: parser}, library, chapterCache, docCache)
	return svc, library, chapterCache, docCache
}

func TestOpen_PersistsAndWarmsCaches(t *testing.T) {
	parser := testParser()
	svc, library, chapterCache, docCache := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)
	assert.Equal(t, "Test Book", doc.Title)
	assert.Equal(t, int64(1), parser.parses.Load())

	stored, err := library.GetByPath(ctx, "/books/test.epub")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, stored.ID)
	assert.Equal(t, "Test Book", stored.Title)

	_, ok := docCache.Get(doc.ID)
	assert.True(t, ok)

	chapters, err := chapterCache.GetChapters(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, chapters, 2)
}

func TestOpen_ReopenKeepsIdentityAndProgress(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	first, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, first.ID, 18)
	require.NoError(t, err)

	second, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 18, second.CurrentPosition)
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	svc := NewReaderService(
		&mockResolver{err: domain.ErrUnsupportedFormat},
		memory.NewLibraryStore(),
		memory.NewChapterCache(),
		memory.NewDocumentCache(0),
	)

	_, err := svc.Open(context.Background(), "/books/test.mobi")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestGetContent_ServedFromCacheAfterOpen(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	content, err := svc.GetContent(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, parser.doc.Content, content)

	// Open parsed once; the cached document answered the read.
	assert.Equal(t, int64(1), parser.parses.Load())
}

func TestGetContent_ReparsesAfterEviction(t *testing.T) {
	parser := testParser()
	svc, _, _, docCache := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	docCache.Remove(doc.ID)

	content, err := svc.GetContent(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, parser.doc.Content, content)
	assert.Equal(t, int64(2), parser.parses.Load())

	// The re-parse restored the cache entry under the stored id.
	cached, ok := docCache.Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, doc.ID, cached.ID)
}

func TestGetContent_UnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(testParser())

	_, err := svc.GetContent(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetContentByPath_KnownPathUsesLibrary(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	_, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	content, err := svc.GetContentByPath(ctx, "/books/test.epub")
	require.NoError(t, err)
	assert.Equal(t, parser.doc.Content, content)
	assert.Equal(t, int64(1), parser.parses.Load())
}

func TestGetContentByPath_UnknownPathParsesWithoutImporting(t *testing.T) {
	parser := testParser()
	svc, library, _, _ := newTestService(parser)
	ctx := context.Background()

	content, err := svc.GetContentByPath(ctx, "/books/unimported.epub")
	require.NoError(t, err)
	assert.Equal(t, parser.doc.Content, content)

	docs, err := library.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetChapters_ChapterCacheAvoidsReparse(t *testing.T) {
	parser := testParser()
	svc, _, _, docCache := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	// Evict the parsed document; the persistent chapter tier answers.
	docCache.Remove(doc.ID)

	chapters, err := svc.GetChapters(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, chapters, 2)
	assert.Equal(t, int64(1), parser.parses.Load())
}

func TestGetChapters_MissOnBothTiersReparses(t *testing.T) {
	parser := testParser()
	svc, _, chapterCache, docCache := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	docCache.Remove(doc.ID)
	require.NoError(t, chapterCache.Clear(ctx, doc.ID))

	chapters, err := svc.GetChapters(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, chapters, 2)
	assert.Equal(t, int64(2), parser.parses.Load())

	// Both tiers are warm again.
	_, ok := docCache.Get(doc.ID)
	assert.True(t, ok)
	_, err = chapterCache.GetChapters(ctx, doc.ID)
	assert.NoError(t, err)
}

func TestSearch(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	matches, err := svc.Search(ctx, doc.ID, "TWO")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, "chapter two text", matches[0].Text)
}

func TestSearch_UnknownDocument(t *testing.T) {
	svc, _, _, _ := newTestService(testParser())

	_, err := svc.Search(context.Background(), "missing", "query")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProgress(t *testing.T) {
	parser := testParser()
	svc, library, _, _ := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	progress, err := svc.UpdateProgress(ctx, doc.ID, 18)
	require.NoError(t, err)
	assert.Equal(t, 18, progress.Position)
	assert.InDelta(t, 0.5, progress.Percentage, 1e-9)

	stored, err := library.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, stored.CurrentPosition)
}

func TestUpdateProgress_NegativePosition(t *testing.T) {
	svc, _, _, _ := newTestService(testParser())

	_, err := svc.UpdateProgress(context.Background(), "any", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProgress_UnknownDocument(t *testing.T) {
	svc, _, _, _ := newTestService(testParser())

	_, err := svc.UpdateProgress(context.Background(), "missing", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProgress(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, doc.ID, 36)
	require.NoError(t, err)

	progress, err := svc.Progress(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 36, progress.Position)
	assert.InDelta(t, 1.0, progress.Percentage, 1e-9)
}

func TestDelete_EvictsEverywhere(t *testing.T) {
	parser := testParser()
	svc, library, chapterCache, docCache := newTestService(parser)
	ctx := context.Background()

	doc, err := svc.Open(ctx, "/books/test.epub")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID))

	_, err = library.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, ok := docCache.Get(doc.ID)
	assert.False(t, ok)

	_, err = chapterCache.GetChapters(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLibrary_ListsStoredDocuments(t *testing.T) {
	parser := testParser()
	svc, _, _, _ := newTestService(parser)
	ctx := context.Background()

	_, err := svc.Open(ctx, "/books/one.epub")
	require.NoError(t, err)

	docs, err := svc.Library(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
