// Package markup converts raw chapter markup into plain text.
//
// Strip is a deliberate simplification rather than an HTML parser: it does
// not handle malformed nesting, CDATA, comments, or entities (&amp; passes
// through literally). It is a total function over any string; garbage input
// yields garbage-but-non-crashing output.
package markup

import "strings"

// Strip removes all tags from a markup fragment and collapses whitespace to
// single spaces between tokens, trimmed at both ends. Characters between '<'
// and '>' are dropped; everything else is kept verbatim and then re-tokenized
// on whitespace, so intra-paragraph formatting does not survive.
func Strip(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(out.String()), " ")
}

// ExtractHeading returns the stripped inner text of the first <h1> element
// in the fragment, falling back to the first <h2>, in that priority. It
// returns an empty string when neither heading is present; callers
// synthesise a fallback title.
func ExtractHeading(s string) string {
	for _, tag := range []string{"h1", "h2"} {
		if title := headingText(s, tag); title != "" {
			return title
		}
	}
	return ""
}

// headingText locates <tag ...>inner</tag> and strips the inner markup.
// The search is byte-oriented, mirroring Strip's tolerance for broken input.
func headingText(s, tag string) string {
	open := strings.Index(s, "<"+tag)
	if open < 0 {
		return ""
	}

	rest := s[open:]
	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return ""
	}

	inner := rest[gt+1:]
	end := strings.Index(inner, "</"+tag+">")
	if end < 0 {
		return ""
	}

	return strings.TrimSpace(Strip(inner[:end]))
}
