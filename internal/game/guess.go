package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameCleaner strips apostrophe variants and trailing-question punctuation
// before comparison.
var nameCleaner = strings.NewReplacer(
	"'", "", "’", "", "`", "",
	"?", "", "!", "", ".", "", ",", "",
)

// NormalizeName prepares a player name for fuzzy equality: lowercase,
// punctuation stripped, all whitespace removed and combining marks dropped,
// so "Zidané?" and "zidane" compare equal.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nameCleaner.Replace(s)
	s = strings.Join(strings.Fields(s), "")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return s
}

// NamesEqual reports whether two names are the same player name after
// normalization. Empty names never match.
func NamesEqual(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	return na != "" && na == nb
}

// GuessMatches reports whether a guessed name identifies the target:
// either the full name or the target's surname alone counts, so "Zidane"
// matches "Zinedine Zidane".
func GuessMatches(guess, target string) bool {
	if NamesEqual(guess, target) {
		return true
	}
	fields := strings.Fields(target)
	if len(fields) < 2 {
		return false
	}
	return NamesEqual(guess, fields[len(fields)-1])
}
