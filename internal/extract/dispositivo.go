package extract

import (
	"regexp"
	"strings"

	"github.com/cferraz/acordaos-tracker/internal/textutil"
)

var (
	reAcordam     = regexp.MustCompile(`(?i)\bACORDAM\b`)
	reDispositivo = regexp.MustCompile(`(?i)\bDISPOSITIVO\b`)
)

// clauseWindow is how many characters after the keyword belong to the clause.
const clauseWindow = 2000

// OperativeClause locates the "dispositivo", the span stating the actual
// decision: the ACORDAM keyword plus up to 2000 following characters, else
// the DISPOSITIVO heading with the same window, else the document's last
// 1200 characters, which conventionally hold the conclusion. Returns ""
// only when the document has no trailing text at all.
func OperativeClause(text string) string {
	if m := clauseAt(reAcordam, text); m != "" {
		return m
	}
	if m := clauseAt(reDispositivo, text); m != "" {
		return m
	}
	return strings.TrimSpace(textutil.LastRunes(text, 1200))
}

func clauseAt(re *regexp.Regexp, text string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(text[loc[0]:loc[1]] + textutil.FirstRunes(text[loc[1]:], clauseWindow))
}
