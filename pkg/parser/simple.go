package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// simpleLinePattern matches the delimited format
//
//	YYYY-MM-DD: Category - Description, ₦1,234.56
//
// The amount is always an inflow-signed magnitude in this format; sign
// conventions only exist in the bank formats.
var simpleLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):\s*([^-]+)-\s*([^,]+),\s*₦([\d,]+(?:\.\d{1,2})?)$`)

// parseSimple parses the simple delimited format. All-or-nothing: if any
// non-empty line fails the pattern the whole strategy is abandoned.
func (p *Parser) parseSimple(_ string, lines []string) result {
	if len(lines) == 0 {
		return result{status: statusNoMatch}
	}

	// Only engage when the first line looks like this format, so that bank
	// statements fall through without a malformed verdict on every header.
	if !simpleLinePattern.MatchString(lines[0]) {
		return result{status: statusNoMatch}
	}

	txs := make([]models.Transaction, 0, len(lines))
	for _, line := range lines {
		m := simpleLinePattern.FindStringSubmatch(line)
		if m == nil {
			return result{status: statusMalformed, cause: fmt.Errorf("invalid line format: %q", line)}
		}

		amount, err := parseAmount(m[4])
		if err != nil {
			return result{status: statusMalformed, cause: fmt.Errorf("invalid amount in line %q: %w", line, err)}
		}

		txs = append(txs, models.Transaction{
			Date:        m[1],
			Category:    strings.TrimSpace(m[2]),
			Description: strings.TrimSpace(m[3]),
			Amount:      amount,
		})
	}

	return result{status: statusMatched, txs: txs}
}
