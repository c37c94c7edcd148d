package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [book-id] [query]",
	Short: "Search within a book",
	Long: `Performs a case-insensitive substring search over the book's text,
line by line, and prints each matching line with its line number.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()

	matches, err := readerService.Search(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, matches)
	}

	if len(matches) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	for i := range matches {
		cmd.Printf("  %d: %s\n", matches[i].Line, matches[i].Text)
	}
	cmd.Printf("Total: %d matches\n", len(matches))
	return nil
}

func outputSearchJSON(cmd *cobra.Command, matches []domain.SearchMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
