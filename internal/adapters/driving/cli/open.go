package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Open a book and add it to the library",
	Long: `Parses the file, stores its metadata in the library, and warms the
caches. Re-opening a known file keeps its reading progress.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()

	doc, err := readerService.Open(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	cmd.Printf("Opened: %s\n", doc.Title)
	cmd.Printf("  ID: %s\n", doc.ID)
	if doc.Author != "" {
		cmd.Printf("  Author: %s\n", doc.Author)
	}
	cmd.Printf("  Type: %s\n", doc.FileType)
	cmd.Printf("  Pages: %d\n", doc.TotalPages)
	if len(doc.Chapters) > 0 {
		cmd.Printf("  Chapters: %d\n", len(doc.Chapters))
	}
	if doc.CoverImage != "" {
		cmd.Println("  Cover: embedded")
	}
	return nil
}
