package mei

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isArtifact reports invisible runes that copy-paste and HTML rendering
// leave behind: emoji variation selectors, zero-width characters and BOMs.
func isArtifact(r rune) bool {
	switch r {
	case '\ufe0e', '\ufe0f', '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff':
		return true
	}
	return false
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// NormalizeLine cleans a single line: non-breaking spaces become spaces,
// encoding artifacts are dropped, runs of whitespace collapse to one space
// and the result is trimmed. NormalizeLine is idempotent.
func NormalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")

	t := transform.Chain(runes.Remove(runes.Predicate(isArtifact)), norm.NFC)
	s, _, _ = transform.String(t, s)

	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Normalize splits text into lines, normalizes each one and drops the
// lines that end up empty. Line order is preserved.
func Normalize(text string) []string {
	raw := strings.FieldsFunc(text, isLineBreak)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if n := NormalizeLine(l); n != "" {
			lines = append(lines, n)
		}
	}
	return lines
}
