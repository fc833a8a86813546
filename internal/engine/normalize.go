package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes a player name for matching: accents and
// other diacritics are stripped, the result is lower-cased and trimmed.
// Idempotent, and identical for roster names and stat-table names so
// matching stays symmetric. Never fails; bad input yields "".
func NormalizeName(name string) string {
	// chained transformers carry state, so build one per call
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		stripped = name
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
