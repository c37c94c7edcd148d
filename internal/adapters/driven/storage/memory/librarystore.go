package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// Ensure LibraryStore implements the interface.
var _ driven.LibraryStore = (*LibraryStore)(nil)

// LibraryStore is an in-memory implementation of driven.LibraryStore.
// It mirrors the SQLite adapter's behaviour (unique file paths, list order)
// for use in tests.
type LibraryStore struct {
	mu        sync.RWMutex
	documents map[string]domain.StoredDocument
}

// NewLibraryStore creates a new in-memory library store.
func NewLibraryStore() *LibraryStore {
	return &LibraryStore{documents: make(map[string]domain.StoredDocument)}
}

// Save stores or updates a library row, replacing any earlier row with the
// same file path.
func (s *LibraryStore) Save(_ context.Context, doc *domain.StoredDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.documents {
		if existing.FilePath == doc.FilePath && id != doc.ID {
			delete(s.documents, id)
		}
	}
	s.documents[doc.ID] = *doc
	return nil
}

// Get retrieves a stored document by id.
func (s *LibraryStore) Get(_ context.Context, id string) (*domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// GetByPath retrieves a stored document by file path.
func (s *LibraryStore) GetByPath(_ context.Context, path string) (*domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := range s.documents {
		if s.documents[id].FilePath == path {
			doc := s.documents[id]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all stored documents, most recently read first.
func (s *LibraryStore) List(_ context.Context) ([]domain.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.StoredDocument, 0, len(s.documents))
	for id := range s.documents {
		docs = append(docs, s.documents[id])
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].LastRead.After(docs[j].LastRead)
	})
	return docs, nil
}

// UpdateProgress saves the reading position and bumps last_read.
func (s *LibraryStore) UpdateProgress(_ context.Context, id string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return domain.ErrNotFound
	}
	doc.CurrentPosition = position
	doc.LastRead = time.Now().UTC()
	s.documents[id] = doc
	return nil
}

// Delete removes a stored document.
func (s *LibraryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}
