package driven

import (
	"context"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

// SettingsStore persists the single user settings row.
type SettingsStore interface {
	// GetSettings returns the saved settings, or defaults when none exist.
	GetSettings(ctx context.Context) (*domain.UserSettings, error)

	// SaveSettings stores the settings row.
	SaveSettings(ctx context.Context, settings *domain.UserSettings) error
}
