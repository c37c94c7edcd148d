package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressCmd_SetAndShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "tracked.txt", "0123456789")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "progress", id, "--set", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: 5 (50.0%)")

	out, err = execute(t, "progress", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: 5 (50.0%)")
}

func TestProgressCmd_UnknownBook(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "progress", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSearchCmd_FindsLines(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "searchable.txt", "first line\nsecond LINE\nthird")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "search", id, "line")
	require.NoError(t, err)
	assert.Contains(t, out, "0: first line")
	assert.Contains(t, out, "1: second LINE")
	assert.Contains(t, out, "Total: 2 matches")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeBook(t, "quiet.txt", "nothing to see")
	out, err := execute(t, "open", path)
	require.NoError(t, err)
	id := extractID(t, out)

	out, err = execute(t, "search", id, "absent")
	require.NoError(t, err)
	assert.Contains(t, out, "No matches found.")
}

func TestSearchCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "search", "only-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
