package parser

import (
	"testing"
)

const gtbStatement = `Guaranty Trust Bank PLC
Statement of Account

Date        Description             Debit(N)      Credit(N)     Balance(N)
---------------------------------------------------------------------------
01-Nov-25   Opening Balance                                     100,000.00
02-Nov-25   SALARY PAYMENT OCT                    500,000.00    600,000.00
03-Nov-25   POS SHOPRITE LEKKI      15,000.00                   585,000.00
04-Nov-25   SMS ALERT FEE           0.00          0.00          585,000.00
05-Nov-25   TRF TO JOHN DOE         50,000.00                   535,000.00
06-Nov-25   Closing Balance                                     535,000.00`

func TestParseLedgerGTB(t *testing.T) {
	txs, err := newTestParser().ParseText(gtbStatement)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	// The zero-amount fee row and the balance boilerplate must not appear.
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d: %+v", len(txs), txs)
	}

	if txs[0].Amount != 500000 || txs[0].Category != "Salary" || txs[0].Date != "2025-11-02" {
		t.Errorf("unexpected salary row: %+v", txs[0])
	}
	if txs[1].Amount != -15000 || txs[1].Category != "ATM" {
		t.Errorf("unexpected POS row: %+v", txs[1])
	}
	if txs[2].Amount != -50000 || txs[2].Category != "Transfer" {
		t.Errorf("unexpected transfer row: %+v", txs[2])
	}
}

func TestParseLedgerZenithValueDateColumn(t *testing.T) {
	input := `Zenith Bank PLC
Date         Value Date   Description        Withdrawals   Deposits   Balance
01-Nov-25    01-Nov-25    TRANSFER TO JANE   20,000.00                80,000.00`

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}

	// No prior balance reference, so the row defaults to an outflow.
	if txs[0].Amount != -20000 {
		t.Errorf("expected amount -20000, got %v", txs[0].Amount)
	}
	if txs[0].Description != "TRANSFER TO JANE" {
		t.Errorf("unexpected description %q", txs[0].Description)
	}
}

func TestParseLedgerRowsBeforeColumnHeaderSkipped(t *testing.T) {
	input := `Guaranty Trust Bank PLC
Account Name: JOHN DOE
02-Nov-25   SALARY PAYMENT OCT   500,000.00   600,000.00
Date Description Debit(N) Credit(N) Balance(N)
03-Nov-25   POS SHOPRITE LEKKI   15,000.00    585,000.00`

	txs, err := newTestParser().ParseText(input)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected only the row after the column header, got %d", len(txs))
	}
	if txs[0].Description != "POS SHOPRITE LEKKI" {
		t.Errorf("unexpected description %q", txs[0].Description)
	}
}
