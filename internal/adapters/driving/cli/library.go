package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-reader/folio-cli/internal/core/domain"
)

var libraryJSON bool

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List books in the library",
	Long:  `Lists all stored books, most recently read first.`,
	Args:  cobra.NoArgs,
	RunE:  runLibrary,
}

func init() {
	libraryCmd.Flags().BoolVar(&libraryJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, _ []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()

	docs, err := readerService.Library(ctx)
	if err != nil {
		return fmt.Errorf("failed to list library: %w", err)
	}

	if libraryJSON {
		return outputLibraryJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Println("Library is empty.")
		return nil
	}

	cmd.Println("Library:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].Author != "" {
			cmd.Printf("    Author: %s\n", docs[i].Author)
		}
		cmd.Printf("    Type: %s  Pages: %d\n", docs[i].FileType, docs[i].TotalPages)
		cmd.Printf("    Last read: %s\n", docs[i].LastRead.Format("2006-01-02 15:04"))
		cmd.Println()
	}

	cmd.Printf("Total: %d books\n", len(docs))
	return nil
}

func outputLibraryJSON(cmd *cobra.Command, docs []domain.StoredDocument) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
