package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestOpenCmd_AddsBookToLibrary(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "walden.txt", "I went to the woods.")

	out, err := execute(t, "open", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Opened: walden")
	assert.Contains(t, out, "Type: txt")

	out, err = execute(t, "library")
	require.NoError(t, err)
	assert.Contains(t, out, "walden")
	assert.Contains(t, out, "Total: 1 books")
}

func TestOpenCmd_UnsupportedFormat(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "open", "/books/novel.mobi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestOpenCmd_ServiceNotConfigured(t *testing.T) {
	SetServices(nil, nil)

	_, err := execute(t, "open", "/books/a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestContentCmd_PrintsText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "walden.txt", "I went to the woods.")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "content", id)
	require.NoError(t, err)
	assert.Contains(t, out, "I went to the woods.")
}

func TestContentCmd_ByPathWithoutImport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "loose.txt", "never imported")

	out, err := execute(t, "content", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "never imported")

	out, err = execute(t, "library")
	require.NoError(t, err)
	assert.Contains(t, out, "Library is empty.")
}

func TestChaptersCmd_NoChaptersForPlainText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "flat.txt", "no structure here")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "chapters", id)
	require.NoError(t, err)
	assert.Contains(t, out, "No chapters.")
}

func TestDeleteCmd_RemovesBook(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "gone.txt", "soon deleted")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: "+id)

	out, err = execute(t, "library")
	require.NoError(t, err)
	assert.Contains(t, out, "Library is empty.")
}

// extractID pulls the id printed by the open command.
func extractID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "ID: "); ok {
			return rest
		}
	}
	t.Fatalf("no id in output:\n%s", out)
	return ""
}
