package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-reader/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/folio-reader/folio-cli/internal/core/domain"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsStore())

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserSettings(), *settings)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsStore())
	ctx := context.Background()

	settings := domain.DefaultUserSettings()
	settings.Theme = "dark"
	settings.FontSize = 21

	require.NoError(t, svc.Save(ctx, &settings))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_SaveValidation(t *testing.T) {
	svc := NewSettingsService(memory.NewSettingsStore())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Save(ctx, nil), domain.ErrInvalidInput)

	bad := domain.DefaultUserSettings()
	bad.FontSize = 0
	assert.ErrorIs(t, svc.Save(ctx, &bad), domain.ErrInvalidInput)

	bad = domain.DefaultUserSettings()
	bad.WordsPerPage = -1
	assert.ErrorIs(t, svc.Save(ctx, &bad), domain.ErrInvalidInput)
}
