// Package attendance matches free-text attendee names against the rosters and
// partitions every roster into present and absent members.
//
// Everything in this package is pure: no storage, no logging, no shared state.
package attendance

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the identity form of a name: lower-cased, accents removed
// (NFD decomposition with combining marks dropped) and trimmed.
// Two names are the same person iff their normalized forms are equal.
func Normalize(text string) string {
	// transform.Chain keeps state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		// Not reachable for in-memory strings; fall back to the lower-cased text.
		stripped = strings.ToLower(text)
	}
	return strings.TrimSpace(stripped)
}

// DisplayForm capitalizes every whitespace-separated token of name
// ("jean junior" -> "Jean Junior"). It is for output only.
func DisplayForm(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = capitalize(f)
	}
	return strings.Join(fields, " ")
}

func capitalize(word string) string {
	r := []rune(strings.ToLower(word))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToTitle(r[0])
	return string(r)
}

// ParseEntries splits raw multi-line input into trimmed, non-blank entries.
func ParseEntries(text string) []string {
	lines := strings.FieldsFunc(text, isLineBreak)
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u001c', '\u001d', '\u001e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
