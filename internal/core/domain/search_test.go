package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchContent_CaseInsensitive(t *testing.T) {
	content := "abc\nfoo BAR\nxyz"

	matches := SearchContent(content, "bar")

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, "foo BAR", matches[0].Text)
}

func TestSearchContent_MultipleMatchesInOrder(t *testing.T) {
	content := "the cat\nthe dog\nthe cat again"

	matches := SearchContent(content, "cat")

	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Line)
	assert.Equal(t, 2, matches[1].Line)
}

func TestSearchContent_OneMatchPerLine(t *testing.T) {
	// Repeated hits on a single line still yield one match.
	matches := SearchContent("cat cat cat", "cat")
	assert.Len(t, matches, 1)
}

func TestSearchContent_EmptyQuery(t *testing.T) {
	assert.Nil(t, SearchContent("some content", ""))
}

func TestSearchContent_NoMatches(t *testing.T) {
	assert.Empty(t, SearchContent("abc\ndef", "zzz"))
}
