// Command folio is the entry point for the folio CLI.
// It wires the adapters to the core services and hands off to cobra.
package main

import (
	"fmt"
	"os"

	"github.com/folio-reader/folio-cli/internal/adapters/driven/config/file"
	"github.com/folio-reader/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/folio-reader/folio-cli/internal/adapters/driven/storage/sqlite"
	"github.com/folio-reader/folio-cli/internal/adapters/driving/cli"
	"github.com/folio-reader/folio-cli/internal/core/services"
	"github.com/folio-reader/folio-cli/internal/parsers"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	defer store.Close()

	docCache := memory.NewDocumentCache(configStore.GetInt("cache.capacity"))

	readerService := services.NewReaderService(
		parsers.NewRegistry(),
		store.LibraryStore(),
		store.ChapterCache(),
		docCache,
	)
	settingsService := services.NewSettingsService(store.SettingsStore())

	cli.SetVersion(version)
	cli.SetServices(readerService, settingsService)

	return cli.Execute()
}
