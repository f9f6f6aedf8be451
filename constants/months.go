package constants

import "strings"

// monthNames maps lowercase Portuguese month names to month numbers.
// "marco" covers documents whose cedilla was lost during scanning.
var monthNames = map[string]int{
	"janeiro":   1,
	"fevereiro": 2,
	"março":     3,
	"marco":     3,
	"abril":     4,
	"maio":      5,
	"junho":     6,
	"julho":     7,
	"agosto":    8,
	"setembro":  9,
	"outubro":   10,
	"novembro":  11,
	"dezembro":  12,
}

// MonthNumber resolves a Portuguese month name to its 1-based number.
func MonthNumber(name string) (int, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
