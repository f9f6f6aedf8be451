package extract

import (
	"regexp"
	"strings"

	"github.com/cferraz/acordaos-tracker/constants"
	"github.com/cferraz/acordaos-tracker/internal/textutil"
)

type outcomeCategory struct {
	kind     constants.OutcomeKind
	patterns []*regexp.Regexp
}

// Textual-proximity fallback anchors: the disposition phrase is located
// once, then the bank token only has to appear somewhere after it.
var (
	reDeniedNearBank = regexp.MustCompile(`NEGA.*?PROVIMENTO`)
	grantedNearBank  = "DAR PROVIMENTO"
)

var outcomeTaxonomy = func() []outcomeCategory {
	out := make([]outcomeCategory, 0, len(constants.OutcomeTaxonomy))
	for _, cat := range constants.OutcomeTaxonomy {
		compiled := make([]*regexp.Regexp, len(cat.Phrasing))
		for i, p := range cat.Phrasing {
			compiled[i] = regexp.MustCompile(p)
		}
		out = append(out, outcomeCategory{kind: cat.Kind, patterns: compiled})
	}
	return out
}()

// InferBankDecision classifies the ruling's polarity for the bank. It
// matches the normalized operative clause against the outcome taxonomy in
// fixed category order (first category with any phrasing hit wins), resolves
// which procedural roles the bank occupies among the parties, and combines
// the two: a negative disposition is contrary to the appellant side and
// favorable to the appellee side, a positive disposition the opposite. When
// no taxonomy category matches, a direct textual-proximity fallback looks
// for NEGA…PROVIMENTO or DAR PROVIMENTO followed by the bank's first token.
// Ambiguity resolves to indeterminado; "" is returned only when the clause
// itself is absent.
func InferBankDecision(clause string, parties map[constants.Role]string, banco string) constants.Decision {
	if clause == "" {
		return ""
	}
	dnorm := textutil.NormalizeUpper(clause)

	var matched constants.OutcomeKind
	for _, cat := range outcomeTaxonomy {
		for _, re := range cat.patterns {
			if re.MatchString(dnorm) {
				matched = cat.kind
				break
			}
		}
		if matched != "" {
			break
		}
	}

	bankRoles := bankPartyRoles(parties, banco)

	if matched != "" {
		switch {
		case constants.NegativeDispositions[matched]:
			if hasAnyRole(bankRoles, constants.AppellantRoles) {
				return constants.Contraria
			}
			if hasAnyRole(bankRoles, constants.AppelleeRoles) {
				return constants.Favoravel
			}
			return constants.Indeterminado
		case constants.PositiveDispositions[matched]:
			if hasAnyRole(bankRoles, constants.AppellantRoles) {
				return constants.Favoravel
			}
			if hasAnyRole(bankRoles, constants.AppelleeRoles) {
				return constants.Contraria
			}
			return constants.Indeterminado
		}
	}

	if token := bankToken(banco); token != "" {
		if loc := reDeniedNearBank.FindStringIndex(dnorm); loc != nil && strings.Contains(dnorm[loc[1]:], token) {
			return constants.Contraria
		}
		if i := strings.Index(dnorm, grantedNearBank); i >= 0 && strings.Contains(dnorm[i+len(grantedNearBank):], token) {
			return constants.Favoravel
		}
	}
	return constants.Indeterminado
}

// bankToken is the normalized first whitespace-delimited token of the bank
// name, "" when there is no bank.
func bankToken(banco string) string {
	fields := strings.Fields(banco)
	if len(fields) == 0 {
		return ""
	}
	return textutil.NormalizeUpper(fields[0])
}

// bankPartyRoles collects every role whose name list contains the bank's
// first token or its full normalized name. A bank repeated across roles
// keeps all of them.
func bankPartyRoles(parties map[constants.Role]string, banco string) map[constants.Role]bool {
	roles := make(map[constants.Role]bool)
	token := bankToken(banco)
	if token == "" || len(parties) == 0 {
		return roles
	}
	full := textutil.NormalizeUpper(banco)
	for _, role := range constants.Roles {
		names, ok := parties[role]
		if !ok {
			continue
		}
		for _, nm := range strings.Split(names, ";") {
			nmUpper := textutil.NormalizeUpper(strings.TrimSpace(nm))
			if strings.Contains(nmUpper, token) || strings.Contains(nmUpper, full) {
				roles[role] = true
				break
			}
		}
	}
	return roles
}

func hasAnyRole(set map[constants.Role]bool, candidates []constants.Role) bool {
	for _, r := range candidates {
		if set[r] {
			return true
		}
	}
	return false
}
