// Package cli implements the command-line driving adapter using cobra.
// Commands call the driving port services; wiring happens in main via
// SetServices before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/folio-reader/folio-cli/internal/core/ports/driving"
	"github.com/folio-reader/folio-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Nil until SetServices is called.
var (
	readerService   driving.ReaderService
	settingsService driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal e-book library and reader backend",
	Long: `folio manages a local library of EPUB, PDF, and plain text books.
It parses documents into normalised text, tracks reading progress,
and caches parsed results for fast repeated access.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the service implementations used by the commands.
func SetServices(reader driving.ReaderService, settings driving.SettingsService) {
	readerService = reader
	settingsService = settings
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
