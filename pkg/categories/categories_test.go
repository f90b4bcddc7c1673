package categories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"SALARY PAYMENT OCTOBER", "Salary"},
		{"ATM WITHDRAWAL IKEJA", "ATM"},
		{"TRF TO SAVINGS", "Transfer"},
		{"DSTV SUBSCRIPTION", "Bills"},
		{"Lunch at the cafe", "Food"},
		{"JUMIA ORDER 4411", "Shopping"},
		{"Uber trip downtown", "Transport"},
		{"MTN DATA BUNDLE", "Airtime"},
		{"NETFLIX.COM", "Entertainment"},
		{"CITY PHARMACY", "Health"},
		{"MONTHLY MAINTENANCE FEE", "Bank Charges"},
		{"completely unrelated", "Others"},
		{"", "Others"},
	}

	for _, tt := range tests {
		if got := Default.Categorize(tt.description); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestCategorizeScanOrder(t *testing.T) {
	// "POS SHOPRITE" matches both ATM (pos) and Food (shoprite); the table
	// is scanned in order, so ATM must win.
	if got := Default.Categorize("POS SHOPRITE LEKKI"); got != "ATM" {
		t.Errorf("expected ATM to win the tie, got %q", got)
	}
}

func TestLoad(t *testing.T) {
	content := `categories:
  - name: Groceries
    keywords: [shoprite, spar]
  - name: Rent
    keywords: [landlord, rent]
`
	path := filepath.Join(t.TempDir(), "categories.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}
	if got := table.Categorize("SHOPRITE LEKKI"); got != "Groceries" {
		t.Errorf("expected Groceries, got %q", got)
	}
	if got := table.Categorize("salary"); got != Fallback {
		t.Errorf("expected fallback for unlisted keyword, got %q", got)
	}
}

func TestLoadRejectsEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty table")
	}
}
