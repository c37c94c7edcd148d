package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var progressSet int

var progressCmd = &cobra.Command{
	Use:   "progress [book-id]",
	Short: "Show or update reading progress",
	Long: `Shows the saved reading position for a book. With --set the position
is updated first and the new progress is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().IntVar(&progressSet, "set", -1, "set the reading position (byte offset)")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()
	id := args[0]

	if cmd.Flags().Changed("set") {
		progress, err := readerService.UpdateProgress(ctx, id, progressSet)
		if err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}
		cmd.Printf("Progress: %d (%.1f%%)\n", progress.Position, progress.Percentage*100)
		return nil
	}

	progress, err := readerService.Progress(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}
	cmd.Printf("Progress: %d (%.1f%%)\n", progress.Position, progress.Percentage*100)
	return nil
}
