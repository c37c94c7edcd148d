package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage reader preferences",
	Long:  `View or change the persisted reader display preferences.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Changes a single setting and persists it.

Keys: theme, font-family, font-size, line-height, letter-spacing,
words-per-page, page-margin, justify, hyphenation, animation-speed,
page-curl`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	ctx := context.Background()

	settings, err := settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Settings:")
	cmd.Printf("  theme:           %s\n", settings.Theme)
	cmd.Printf("  font-family:     %s\n", settings.FontFamily)
	cmd.Printf("  font-size:       %d\n", settings.FontSize)
	cmd.Printf("  line-height:     %.2f\n", settings.LineHeight)
	cmd.Printf("  letter-spacing:  %.2f\n", settings.LetterSpacing)
	cmd.Printf("  words-per-page:  %d\n", settings.WordsPerPage)
	cmd.Printf("  page-margin:     %s\n", settings.PageMargin)
	cmd.Printf("  justify:         %t\n", settings.JustifyText)
	cmd.Printf("  hyphenation:     %t\n", settings.Hyphenation)
	cmd.Printf("  animation-speed: %s\n", settings.AnimationSpeed)
	cmd.Printf("  page-curl:       %t\n", settings.PageCurl)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	ctx := context.Background()
	key, value := args[0], args[1]

	settings, err := settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	ctx := context.Background()

	defaults := domain.DefaultUserSettings()
	if err := settingsService.Save(ctx, &defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

// applySetting mutates a single field addressed by its CLI key.
func applySetting(settings *domain.UserSettings, key, value string) error {
	switch key {
	case "theme":
		settings.Theme = value
	case "font-family":
		settings.FontFamily = value
	case "font-size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("font-size must be an integer: %w", err)
		}
		settings.FontSize = n
	case "line-height":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("line-height must be a number: %w", err)
		}
		settings.LineHeight = f
	case "letter-spacing":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("letter-spacing must be a number: %w", err)
		}
		settings.LetterSpacing = f
	case "words-per-page":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("words-per-page must be an integer: %w", err)
		}
		settings.WordsPerPage = n
	case "page-margin":
		settings.PageMargin = value
	case "justify":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("justify must be true or false: %w", err)
		}
		settings.JustifyText = b
	case "hyphenation":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("hyphenation must be true or false: %w", err)
		}
		settings.Hyphenation = b
	case "animation-speed":
		settings.AnimationSpeed = value
	case "page-curl":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("page-curl must be true or false: %w", err)
		}
		settings.PageCurl = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
