package extract

import (
	"regexp"
	"strings"

	"github.com/cferraz/acordaos-tracker/constants"
	"github.com/cferraz/acordaos-tracker/internal/textutil"
)

var (
	reReportMarker = regexp.MustCompile(`(?i)RELAT[ÓO]RIO`)
	reVoteMarker   = regexp.MustCompile(`(?i)\bVOTO\b|\bVOTO DO RELATOR\b|\bVOTOS\b`)

	// A party entry looks like "AGRAVANTE : Nome" with an uppercase label of
	// 3-50 characters and a colon/dash separator.
	rePartyLabel       = regexp.MustCompile(`^([A-ZÀ-Ý0-9\s]{3,50})\s*[:\-–]\s*(.+)$`)
	rePartyLabelPrefix = regexp.MustCompile(`^[A-ZÀ-Ý0-9\s]{3,50}\s*[:\-–]`)
)

// PartyBlock bounds the span most likely to list the parties: the text
// between the RELATÓRIO and VOTO sections when both exist in that order,
// else everything before VOTO, else the document's first 1500 characters.
func PartyBlock(text string) string {
	rel := reReportMarker.FindStringIndex(text)
	voto := reVoteMarker.FindStringIndex(text)
	if rel != nil && voto != nil && rel[0] < voto[0] && rel[1] <= voto[0] {
		return text[rel[1]:voto[0]]
	}
	if voto != nil {
		return text[:voto[0]]
	}
	return textutil.FirstRunes(text, 1500)
}

// ParseParties scans the block line by line for role-labeled entries. The
// label is accent-stripped and matched by substring against the role
// vocabulary in its fixed order, first role wins. Non-blank lines that do
// not themselves start a new labeled entry are absorbed into the current
// name, which handles names wrapped across lines (and, knowingly, any loose
// prose that follows an entry). Names are deduplicated per role preserving
// first-seen order and joined with "; ".
func ParseParties(block string) map[constants.Role]string {
	captured := make(map[constants.Role][]string)
	lines := strings.Split(block, "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if m := rePartyLabel.FindStringSubmatch(line); m != nil {
			label := textutil.NormalizeUpper(m[1])
			var matched constants.Role
			for _, r := range constants.Roles {
				if strings.Contains(label, string(r)) {
					matched = r
					break
				}
			}
			if matched != "" {
				name := strings.TrimSpace(m[2])
				j := i + 1
				for j < len(lines) {
					next := strings.TrimSpace(lines[j])
					if next == "" || rePartyLabelPrefix.MatchString(next) {
						break
					}
					name += " " + next
					j++
				}
				if clean := textutil.Normalize(name); clean != "" {
					captured[matched] = append(captured[matched], clean)
				}
				i = j
				continue
			}
		}
		i++
	}

	flat := make(map[constants.Role]string, len(captured))
	for role, names := range captured {
		seen := make(map[string]bool, len(names))
		unique := make([]string, 0, len(names))
		for _, n := range names {
			n = textutil.CollapseSpaces(n)
			if !seen[n] {
				seen[n] = true
				unique = append(unique, n)
			}
		}
		if len(unique) > 0 {
			flat[role] = strings.Join(unique, "; ")
		}
	}
	return flat
}
