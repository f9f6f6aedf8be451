// Package textutil provides the text canonicalization used by every
// extraction heuristic: accent stripping, whitespace collapsing and case
// folding for tolerant comparisons over noisy scanned text.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// stripMarks decomposes to NFD, drops the combining marks and recomposes,
// turning "Itaú" into "Itau" without touching base letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, collapses whitespace runs to a single space
// and trims both ends. Empty input passes through unchanged.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeUpper is Normalize followed by uppercasing. Used for
// case-insensitive containment checks only; stored values keep the
// normalized original case.
func NormalizeUpper(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(Normalize(s))
}

// CollapseSpaces collapses internal whitespace without touching accents.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// FirstRunes returns at most n leading runes of s.
func FirstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// LastRunes returns at most n trailing runes of s.
func LastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
