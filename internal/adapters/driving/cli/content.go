package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var contentByPath bool

var contentCmd = &cobra.Command{
	Use:   "content [book-id]",
	Short: "Print the full text of a book",
	Long: `Prints the normalised plain-text content of a book. With --path the
argument is treated as a file path instead of a library id; unknown
paths are parsed without being imported.`,
	Args: cobra.ExactArgs(1),
	RunE: runContent,
}

func init() {
	contentCmd.Flags().BoolVar(&contentByPath, "path", false, "look up by file path instead of id")
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ctx := context.Background()

	var (
		content string
		err     error
	)
	if contentByPath {
		content, err = readerService.GetContentByPath(ctx, args[0])
	} else {
		content, err = readerService.GetContent(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get content: %w", err)
	}

	cmd.Println(content)
	return nil
}
