package parser

import (
	"regexp"
	"strings"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// lineFormat is the grammar of one bank's single-line statement export.
// A line matches at most one bank; formats are tried in table order.
type lineFormat struct {
	bank string
	re   *regexp.Regexp
}

// Single-line formats. Capture groups: 1=date, 2=description, 3=amount,
// 4=credit/debit marker. UBA and FIRSTBANK use DD/MM/YYYY dates; the rest use
// DD-MMM-YY(YY).
var lineFormats = []lineFormat{
	{"GTB", regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{2})\s+(.*?)\s+(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s+(CR|DR)`)},
	{"ACCESS", regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})\s+(.*?)\s+NGN\s*(\d{1,3}(?:,\d{3})*\.\d{2})\s*(CR|DR)`)},
	{"UBA", regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(.*?)\s+NGN\s*(\d{1,3}(?:,\d{3})*\.\d{2})\s*(C|D)`)},
	{"ZENITH", regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})\s+(.*?)\s+(\d{1,3}(?:,\d{3})*\.\d{2})\s+(CR|DR)`)},
	{"FIRSTBANK", regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(.*?)\s+(\d{1,3}(?:,\d{3})*\.\d{2})\s+(CR|DR)`)},
}

// parseBankLines matches each line against the bank grammars. Unmatched lines
// are skipped without error; one matching line is enough for the strategy to
// claim the input.
func (p *Parser) parseBankLines(_ string, lines []string) result {
	var txs []models.Transaction

	for _, line := range lines {
		for _, format := range lineFormats {
			m := format.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			amount, err := parseAmount(m[3])
			if err != nil {
				p.logger.Debug("unparseable amount", "bank", format.bank, "line", line, "error", err)
				break
			}

			description := strings.TrimSpace(m[2])
			if isDebitMarker(m[4]) {
				amount = -amount
			}

			txs = append(txs, models.Transaction{
				Date:        NormalizeDate(m[1]),
				Description: description,
				Category:    p.table.Categorize(description),
				Amount:      amount,
			})
			break
		}
	}

	if len(txs) == 0 {
		return result{status: statusNoMatch}
	}
	return result{status: statusMatched, txs: txs}
}

// isDebitMarker reports whether a CR/DR token marks an outflow.
func isDebitMarker(marker string) bool {
	return marker == "DR" || marker == "D"
}
