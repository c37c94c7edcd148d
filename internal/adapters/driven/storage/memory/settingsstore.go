package memory

import (
	"context"
	"sync"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore,
// used in tests.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *domain.UserSettings
}

// NewSettingsStore creates a new in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// GetSettings returns the saved settings, or defaults when none exist yet.
func (s *SettingsStore) GetSettings(_ context.Context) (*domain.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		defaults := domain.DefaultUserSettings()
		return &defaults, nil
	}
	settings := *s.settings
	return &settings, nil
}

// SaveSettings replaces the saved settings.
func (s *SettingsStore) SaveSettings(_ context.Context, settings *domain.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *settings
	s.settings = &copied
	return nil
}
