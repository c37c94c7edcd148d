package domain

import "strings"

// SearchMatch is a single in-document search hit.
type SearchMatch struct {
	// Line is the 0-based line number within the document content.
	Line int

	// Text is the full matching line, as stored.
	Text string
}

// SearchContent performs a case-insensitive substring search over content
// split into newline-delimited lines. Matches are returned in document order.
// An empty query matches nothing.
func SearchContent(content, query string) []SearchMatch {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []SearchMatch
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), needle) {
			matches = append(matches, SearchMatch{Line: i, Text: line})
		}
	}
	return matches
}
