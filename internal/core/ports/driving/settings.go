package driving

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// SettingsService manages the reader's persisted display preferences.
type SettingsService interface {
	// Get returns the saved settings, or defaults when none exist.
	Get(ctx context.Context) (*domain.UserSettings, error)

	// Save persists the settings.
	Save(ctx context.Context, settings *domain.UserSettings) error
}
