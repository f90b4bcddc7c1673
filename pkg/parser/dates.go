package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var months = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04", "MAY": "05", "JUN": "06",
	"JUL": "07", "AUG": "08", "SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

var (
	// DD-MMM-YY or DD-MMM-YYYY, three-letter month, case-insensitive
	dashDatePattern = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2}|\d{4})$`)
	// DD/MM/YYYY
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// NormalizeDate converts the two supported calendar notations to YYYY-MM-DD.
// Two-digit years are assumed to be in the 2000s. Anything that does not
// match a known notation is returned unchanged, which makes normalization
// idempotent.
func NormalizeDate(date string) string {
	if m := dashDatePattern.FindStringSubmatch(date); m != nil {
		day, mon, year := m[1], m[2], m[3]
		num, ok := months[strings.ToUpper(mon)]
		if !ok {
			return date
		}
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%s-%s", year, num, pad2(day))
	}
	if m := slashDatePattern.FindStringSubmatch(date); m != nil {
		day, mon, year := m[1], m[2], m[3]
		return fmt.Sprintf("%s-%s-%s", year, pad2(mon), pad2(day))
	}
	return date
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// amountTokenPattern matches a thousands-grouped monetary amount with up to
// two fractional digits, e.g. "1,234.56" or "500".
var amountTokenPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?$`)

// parseAmount converts an amount string to a float64, stripping thousands
// separators first.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
