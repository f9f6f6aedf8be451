package extract

import (
	"regexp"
	"strings"

	"github.com/cferraz/acordaos-tracker/constants"
	"github.com/cferraz/acordaos-tracker/internal/textutil"
)

// casePatterns is an ordered fallback chain: the most structured headings
// first, the loosest label last. The first pattern that matches wins.
var casePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bN(?:º|°|o)\s*[:.]?\s*([0-9]{4,}[0-9.\-/]*)\s*(?:-\s*([A-Z]{2}))`),
	regexp.MustCompile(`(?i)\bPROCESSO\s*(?:N(?:º|o)\.?)\s*([0-9./-]+)\s*(?:-\s*([A-Z]{2}))?`),
	regexp.MustCompile(`(?i)\bRECURSO ESPECIAL\s*(?:N(?:º|o)\.?)\s*([0-9]+)\s*(?:-\s*([A-Z]{2}))`),
	regexp.MustCompile(`(?i)\bREsp\.?\s*([0-9./-]+)\b`),
	regexp.MustCompile(`(?i)\bProcesso:\s*([0-9./-]+)\s*(?:-\s*([A-Z]{2}))?`),
}

var (
	reStateExact = regexp.MustCompile(`^[A-Z]{2}$`)
	reStateTail  = regexp.MustCompile(`-\s*([A-Z]{2})`)
)

// CaseNumberAndState extracts the case number and, when available, the
// two-letter state code. If the matching pattern captured no state, the 40
// characters following the match are searched for a "-XX" suffix. Either
// value can be absent ("") independently.
func CaseNumberAndState(text string) (string, string) {
	for _, re := range casePatterns {
		idx := re.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		var groups []string
		for g := 1; g*2 < len(idx); g++ {
			if idx[g*2] >= 0 {
				if v := strings.TrimSpace(text[idx[g*2]:idx[g*2+1]]); v != "" {
					groups = append(groups, v)
				}
			}
		}
		if len(groups) == 0 {
			continue
		}
		proc := groups[0]
		estado := ""
		if last := groups[len(groups)-1]; len(groups) > 1 && reStateExact.MatchString(last) {
			estado = last
		} else {
			tail := textutil.FirstRunes(text[idx[1]:], 40)
			if m := reStateTail.FindStringSubmatch(tail); m != nil {
				estado = m[1]
			}
		}
		return proc, estado
	}
	return "", ""
}

var rulingTypePatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(constants.RulingTypes))
	for i, t := range constants.RulingTypes {
		out[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t) + `\b`)
	}
	return out
}()

// reHeaderType pulls a heuristic type label out of the first line: the text
// preceding the "Nº" marker of the heading. The ASCII "No" spelling needs a
// word boundary; º and ° delimit themselves.
var reHeaderType = regexp.MustCompile(`(?i)^(.*?)\s+N(?:º|°|o\b)`)

// RulingType returns the first known ruling-type phrase found in the text,
// in the fixed priority order of constants.RulingTypes. When none occurs it
// falls back to the document's first line.
func RulingType(text string) string {
	for i, re := range rulingTypePatterns {
		if re.MatchString(text) {
			return constants.RulingTypes[i]
		}
	}
	firstLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		firstLine = text[:i]
	}
	if m := reHeaderType.FindStringSubmatch(firstLine); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
