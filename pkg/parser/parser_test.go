package parser

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

func newTestParser() *Parser {
	return New(log.Default())
}

func TestParseSimpleFormat(t *testing.T) {
	input := "2025-10-01: Salary - Monthly salary, ₦50000\n2025-10-05: Groceries - Shoprite, ₦5000"

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	expected := []models.Transaction{
		{Date: "2025-10-01", Category: "Salary", Description: "Monthly salary", Amount: 50000},
		{Date: "2025-10-05", Category: "Groceries", Description: "Shoprite", Amount: 5000},
	}

	if len(txs) != len(expected) {
		t.Fatalf("expected %d transactions, got %d", len(expected), len(txs))
	}
	for i, exp := range expected {
		if txs[i] != exp {
			t.Errorf("transaction %d mismatch:\nexpected: %+v\ngot:      %+v", i, exp, txs[i])
		}
	}
}

func TestParseSimpleFormatGroupedAmount(t *testing.T) {
	txs, err := newTestParser().ParseText("2025-10-01: Rent - Apartment rent, ₦1,250,000.50")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].Amount != 1250000.50 {
		t.Errorf("expected amount 1250000.50, got %v", txs[0].Amount)
	}
}

func TestParseBankLines(t *testing.T) {
	input := "01-Nov-25 SALARY PAYMENT 500,000.00 CR\n05-Nov-25 POS SHOPRITE LEKKI 15,000.00 DR"

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}

	if txs[0].Amount != 500000 || txs[0].Category != "Salary" || txs[0].Date != "2025-11-01" {
		t.Errorf("unexpected credit transaction: %+v", txs[0])
	}
	if txs[1].Amount != -15000 || txs[1].Category != "ATM" || txs[1].Date != "2025-11-05" {
		t.Errorf("unexpected debit transaction: %+v", txs[1])
	}
}

func TestParseBankLinesSkipsUnmatched(t *testing.T) {
	input := "Some statement preamble\n01-Nov-25 TRANSFER TO JOHN 20,000.00 DR\nPage 1 of 2"

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].Category != "Transfer" || txs[0].Amount != -20000 {
		t.Errorf("unexpected transaction: %+v", txs[0])
	}
}

func TestParseBankLinesRegionalVariants(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		amount float64
		date   string
	}{
		{"access", "01-Nov-2025 TRF TO SAVINGS NGN 50,000.00 DR", -50000, "2025-11-01"},
		{"uba", "02/11/2025 ATM WITHDRAWAL IKEJA NGN 10,000.00 D", -10000, "2025-11-02"},
		{"zenith", "03-Nov-2025 AIRTIME MTN 1,000.00 DR", -1000, "2025-11-03"},
		{"firstbank", "04/11/2025 SALARY OCTOBER 300,000.00 CR", 300000, "2025-11-04"},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := p.ParseText(tt.line)
			if err != nil {
				t.Fatalf("ParseText failed: %v", err)
			}
			if len(txs) != 1 {
				t.Fatalf("expected 1 transaction, got %d", len(txs))
			}
			if txs[0].Amount != tt.amount {
				t.Errorf("expected amount %v, got %v", tt.amount, txs[0].Amount)
			}
			if txs[0].Date != tt.date {
				t.Errorf("expected date %s, got %s", tt.date, txs[0].Date)
			}
		})
	}
}

func TestParseJSONArray(t *testing.T) {
	input := `[{"amount": 50000, "category": "Salary"}, {"amount": -5000, "description": "Shoprite"}]`

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	// Passthrough: no category inference, no date normalization
	if txs[1].Category != "" {
		t.Errorf("expected passthrough category to stay empty, got %q", txs[1].Category)
	}
}

func TestParseUnrecognizedFormat(t *testing.T) {
	_, err := newTestParser().ParseText("this is not a bank statement")
	if err == nil {
		t.Fatal("expected error for unrecognized format")
	}
	if !strings.HasPrefix(err.Error(), "Failed to parse bank statement: ") {
		t.Errorf("error missing contract prefix: %v", err)
	}
}

func TestMalformedSimpleLineFallsThrough(t *testing.T) {
	// First line selects the simple strategy, second line breaks it. The
	// strategy aborts without partial results and no later strategy matches.
	input := "2025-10-01: Salary - Monthly salary, ₦50000\nnot a valid line"

	_, err := newTestParser().ParseText(input)
	if err == nil {
		t.Fatal("expected error, got partial results")
	}
	if !strings.HasPrefix(err.Error(), "Failed to parse bank statement: ") {
		t.Errorf("error missing contract prefix: %v", err)
	}
}

func TestParseInputStructuredArray(t *testing.T) {
	input := `[{"amount": 100.5, "category": "Food", "date": "05-Nov-25"}]`

	txs, err := newTestParser().ParseInput([]byte(input))
	if err != nil {
		t.Fatalf("ParseInput failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 100.5 {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
	if txs[0].Date != "05-Nov-25" {
		t.Errorf("structured input must pass through unnormalized, got %q", txs[0].Date)
	}
}

func TestParseInputString(t *testing.T) {
	txs, err := newTestParser().ParseInput([]byte(`"01-Nov-25 SALARY PAYMENT 500,000.00 CR"`))
	if err != nil {
		t.Fatalf("ParseInput failed: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 500000 {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}
