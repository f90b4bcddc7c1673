package parser

import (
	"regexp"
	"strings"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// ledgerFormat describes one bank's full-statement layout: a bank header
// literal, the column-header line that opens the transaction section, and the
// shape of a data row. Detection is separate from row parsing so new banks
// only need a new table entry.
type ledgerFormat struct {
	bank         string
	header       *regexp.Regexp
	columnHeader *regexp.Regexp
	// row captures 1=date and 2=the remainder of the row (description plus
	// numeric columns). ZENITH rows carry an extra value-date column that is
	// consumed here.
	row *regexp.Regexp
}

var ledgerFormats = []ledgerFormat{
	{
		bank:         "GTB",
		header:       regexp.MustCompile(`(?i)Guaranty Trust Bank PLC`),
		columnHeader: regexp.MustCompile(`(?i)Date\s+Description\s+Debit\(N\)\s+Credit\(N\)\s+Balance\(N\)`),
		row:          regexp.MustCompile(`^(\d{2}-[A-Za-z]{3}-\d{2})\s+(.+)$`),
	},
	{
		bank:         "ZENITH",
		header:       regexp.MustCompile(`(?i)Zenith Bank PLC`),
		columnHeader: regexp.MustCompile(`(?i)Date\s+Value Date\s+Description\s+Withdrawals\s+Deposits\s+Balance`),
		row:          regexp.MustCompile(`^(\d{2}-[A-Za-z]{3}-\d{2,4})\s+\d{2}-[A-Za-z]{3}-\d{2,4}\s+(.+)$`),
	},
	{
		bank:         "ACCESS",
		header:       regexp.MustCompile(`(?i)Access Bank PLC`),
		columnHeader: regexp.MustCompile(`(?i)Date\s+Narration\s+Debit\s+Credit\s+Balance`),
		row:          regexp.MustCompile(`^(\d{2}-[A-Za-z]{3}-\d{2,4})\s+(.+)$`),
	},
	{
		bank:         "UBA",
		header:       regexp.MustCompile(`(?i)United Bank for Africa PLC`),
		columnHeader: regexp.MustCompile(`(?i)Date\s+Description\s+Dr\s*\(₦\)\s+Cr\s*\(₦\)\s+Balance\s*\(₦\)`),
		row:          regexp.MustCompile(`^(\d{2}-[A-Za-z]{3}-\d{2})\s+(.+)$`),
	},
}

// parseLedger parses full bank statements: a bank header, a column-header
// line, then fixed-column rows ending in a running balance.
func (p *Parser) parseLedger(_ string, lines []string) result {
	format := detectLedgerBank(lines)
	if format == nil {
		return result{status: statusNoMatch}
	}
	p.logger.Debug("bank header detected", "bank", format.bank)

	var txs []models.Transaction
	inSection := false
	var prevBalance float64
	havePrev := false

	for _, line := range lines {
		if format.columnHeader.MatchString(line) {
			inSection = true
			continue
		}
		if strings.HasPrefix(line, "--") {
			continue
		}
		if strings.Contains(line, "Opening Balance") || strings.Contains(line, "Closing Balance") {
			if bal, ok := trailingAmount(line); ok {
				prevBalance = bal
				havePrev = true
			}
			continue
		}
		if !inSection {
			continue
		}

		m := format.row.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		rest := strings.Fields(m[2])
		amounts, desc := peelAmounts(rest)

		var amount, balance float64
		haveBalance := false
		switch len(amounts) {
		case 3:
			// debit, credit and balance all printed
			amount = amounts[1] - amounts[0]
			balance = amounts[2]
			haveBalance = true
		case 2:
			// one movement column plus the balance; the sign comes from the
			// direction the running balance moved
			amount = amounts[0]
			balance = amounts[1]
			haveBalance = true
			if !havePrev || balance < prevBalance {
				amount = -amount
			}
		case 1:
			// balance-only row, nothing to record
			prevBalance = amounts[0]
			havePrev = true
			continue
		default:
			continue
		}

		if haveBalance {
			prevBalance = balance
			havePrev = true
		}
		if amount == 0 {
			continue
		}

		description := strings.Join(desc, " ")
		txs = append(txs, models.Transaction{
			Date:        NormalizeDate(m[1]),
			Description: description,
			Category:    p.table.Categorize(description),
			Amount:      amount,
		})
	}

	if len(txs) == 0 {
		return result{status: statusNoMatch}
	}
	return result{status: statusMatched, txs: txs}
}

func detectLedgerBank(lines []string) *ledgerFormat {
	for i := range ledgerFormats {
		for _, line := range lines {
			if ledgerFormats[i].header.MatchString(line) {
				return &ledgerFormats[i]
			}
		}
	}
	return nil
}

// peelAmounts strips monetary tokens off the end of a row, rightmost last,
// and returns them in column order along with the remaining description
// fields. At most three are taken: debit, credit, balance.
func peelAmounts(fields []string) ([]float64, []string) {
	var amounts []float64
	end := len(fields)
	for end > 0 && len(amounts) < 3 {
		token := fields[end-1]
		if !amountTokenPattern.MatchString(token) {
			break
		}
		value, err := parseAmount(token)
		if err != nil {
			break
		}
		amounts = append([]float64{value}, amounts...)
		end--
	}
	return amounts, fields[:end]
}

func trailingAmount(line string) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	last := fields[len(fields)-1]
	if !amountTokenPattern.MatchString(last) {
		return 0, false
	}
	value, err := parseAmount(last)
	if err != nil {
		return 0, false
	}
	return value, true
}
