package extract

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cferraz/acordaos-tracker/constants"
	"github.com/cferraz/acordaos-tracker/internal/textutil"
)

const bankMatchCutoff = 0.70

var (
	// "BANCO <name>": bounded, lazy capture of name-like characters.
	reBancoName = regexp.MustCompile(`(?i)\bBANCO\s+([A-ZÀ-Ý0-9.\-/\s,&]{2,80}?)\b`)
	// Corporate name ending in "S.A.".
	reCorpSA = regexp.MustCompile(`(?i)([A-Z][A-Z\s.\-,&]{3,80}S\.A\.?)`)
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// DetectBank finds the bank the ruling is about. Strategy order: containment
// of a known bank name in the accent-stripped uppercase text (the canonical
// list spelling is returned), then a "BANCO <name>" capture, then a
// corporate "… S.A." capture fuzzy-matched against the known list. Returns
// "" when no strategy produces a candidate.
func DetectBank(text string) string {
	upper := textutil.NormalizeUpper(text)
	if upper == "" {
		return ""
	}
	for _, b := range constants.CommonBanks {
		if strings.Contains(upper, textutil.NormalizeUpper(b)) {
			return b
		}
	}
	if m := reBancoName.FindString(text); m != "" {
		return textutil.Normalize(m)
	}
	if m := reCorpSA.FindStringSubmatch(text); m != nil {
		cand := textutil.Normalize(m[1])
		if known := closestKnownBank(strings.ToUpper(cand)); known != "" {
			return titleCaser.String(strings.ToLower(known))
		}
		return cand
	}
	return ""
}

// closestKnownBank returns the best-scoring known bank name (uppercase) with
// similarity >= bankMatchCutoff, or "" when nothing is close enough.
func closestKnownBank(cand string) string {
	best, bestScore := "", 0.0
	for _, b := range constants.CommonBanks {
		bu := strings.ToUpper(b)
		if score := levenshtein.Match(cand, bu, nil); score >= bankMatchCutoff && score > bestScore {
			best, bestScore = bu, score
		}
	}
	return best
}
