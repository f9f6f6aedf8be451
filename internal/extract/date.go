package extract

import (
	"regexp"
	"strconv"
	"time"

	"github.com/cferraz/acordaos-tracker/constants"
)

var (
	// Textual form first: "Brasília, 28 de agosto de 2023".
	reTextualDate = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+([a-zçãéíóú]+)\s+de\s+(\d{4})`)
	// Numeric fallback: "28/08/2023" or "28-08-2023".
	reNumericDate = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
)

// JudgmentDate extracts the judgment date normalized to DD/MM/YYYY. A match
// whose day/month/year is not a real calendar date (31/02, day 31 of a
// 30-day month) is discarded and the next pattern is tried. Returns "" when
// no valid date is found.
func JudgmentDate(text string) string {
	if m := reTextualDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if month, ok := constants.MonthNumber(m[2]); ok {
			if s, ok := formatValidDate(year, month, day); ok {
				return s
			}
		}
	}
	if m := reNumericDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if s, ok := formatValidDate(year, month, day); ok {
			return s
		}
	}
	return ""
}

// formatValidDate builds the calendar date and rejects values that
// time.Date had to normalize (impossible day/month combinations).
func formatValidDate(year, month, day int) (string, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return "", false
	}
	return d.Format("02/01/2006"), true
}
