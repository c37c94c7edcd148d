package services

import (
	"context"
	"fmt"

	"github.com/folio-reader/folio-cli/internal/core/domain"
	"github.com/folio-reader/folio-cli/internal/core/ports/driven"
	"github.com/folio-reader/folio-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the reader's persisted display preferences.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the saved settings, or defaults when none exist.
func (s *SettingsService) Get(ctx context.Context) (*domain.UserSettings, error) {
	return s.store.GetSettings(ctx)
}

// Save persists the settings after basic validation.
func (s *SettingsService) Save(ctx context.Context, settings *domain.UserSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if settings.FontSize <= 0 {
		return fmt.Errorf("font size %d: %w", settings.FontSize, domain.ErrInvalidInput)
	}
	if settings.WordsPerPage <= 0 {
		return fmt.Errorf("words per page %d: %w", settings.WordsPerPage, domain.ErrInvalidInput)
	}
	return s.store.SaveSettings(ctx, settings)
}
