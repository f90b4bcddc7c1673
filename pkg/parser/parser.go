package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Thomson-dev/bank-summary-agent/pkg/categories"
	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// errPrefix is the contract prefix for every parse failure surfaced to
// callers of the analyzer tool.
const errPrefix = "Failed to parse bank statement: "

// ParseError wraps the underlying cause of a failed parse.
func ParseError(format string, args ...any) error {
	return fmt.Errorf(errPrefix+format, args...)
}

// status is the outcome of trying one parsing strategy on an input.
type status int

const (
	// statusNoMatch means the strategy does not apply to this input.
	statusNoMatch status = iota
	// statusMatched means the strategy recognized the input and produced
	// the full transaction set.
	statusMatched
	// statusMalformed means the strategy was selected by the input's shape
	// but a line failed its grammar. The engine falls through to the next
	// strategy rather than returning partial results.
	statusMalformed
)

type result struct {
	status status
	txs    []models.Transaction
	cause  error
}

type strategy struct {
	name string
	run  func(text string, lines []string) result
}

// Parser converts raw statement input into normalized transactions. It tries
// an ordered list of strategies and takes the first one that matches.
type Parser struct {
	logger     *log.Logger
	table      categories.Table
	strategies []strategy
}

// New creates a Parser using the built-in category table.
func New(logger *log.Logger) *Parser {
	return NewWithTable(logger, categories.Default)
}

// NewWithTable creates a Parser with a caller-supplied category table.
func NewWithTable(logger *log.Logger, table categories.Table) *Parser {
	p := &Parser{logger: logger, table: table}
	p.strategies = []strategy{
		{name: "json_array", run: p.parseJSONArray},
		{name: "simple_delimited", run: p.parseSimple},
		{name: "bank_line", run: p.parseBankLines},
		{name: "ledger", run: p.parseLedger},
	}
	return p
}

// ParseText parses raw statement text into transactions. Strategies are tried
// in order; a malformed outcome under one strategy does not abort the parse,
// it only rules that strategy out.
func (p *Parser) ParseText(text string) ([]models.Transaction, error) {
	lines := splitLines(text)

	for _, s := range p.strategies {
		res := s.run(text, lines)
		switch res.status {
		case statusMatched:
			p.logger.Debug("statement parsed", "strategy", s.name, "transactions", len(res.txs))
			return res.txs, nil
		case statusMalformed:
			p.logger.Debug("strategy rejected input", "strategy", s.name, "cause", res.cause)
		}
	}

	return nil, ParseError("unrecognized statement format")
}

// ParseInput accepts the analyzer tool's input: either a JSON array of
// transaction records or a string holding statement text. Structured arrays
// pass through unchanged.
func (p *Parser) ParseInput(input json.RawMessage) ([]models.Transaction, error) {
	trimmed := strings.TrimSpace(string(input))
	if trimmed == "" {
		return nil, ParseError("empty input")
	}

	if trimmed[0] == '[' {
		var txs []models.Transaction
		if err := json.Unmarshal(input, &txs); err != nil {
			return nil, ParseError("invalid transaction array: %v", err)
		}
		return txs, nil
	}

	var text string
	if err := json.Unmarshal(input, &text); err != nil {
		return nil, ParseError("input must be a string or an array of transactions")
	}
	return p.ParseText(text)
}

// parseJSONArray handles statement text that is itself a JSON-encoded
// transaction array. Caller-provided fields pass through as-is.
func (p *Parser) parseJSONArray(text string, _ []string) result {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") {
		return result{status: statusNoMatch}
	}

	var txs []models.Transaction
	if err := json.Unmarshal([]byte(trimmed), &txs); err != nil {
		return result{status: statusMalformed, cause: err}
	}
	return result{status: statusMatched, txs: txs}
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
