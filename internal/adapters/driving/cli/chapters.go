package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [book-id]",
	Short: "List the chapters of a book",
	Args:  cobra.ExactArgs(1),
	RunE:  runChapters,
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}

func runChapters(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()

	chapters, err := readerService.GetChapters(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get chapters: %w", err)
	}

	if len(chapters) == 0 {
		cmd.Println("No chapters.")
		return nil
	}

	for i := range chapters {
		cmd.Printf("  [%d] %s (%d-%d)\n", i+1, chapters[i].Title,
			chapters[i].StartPosition, chapters[i].EndPosition)
	}
	return nil
}
