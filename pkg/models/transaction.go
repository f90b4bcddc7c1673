package models

// Transaction represents a single normalized bank transaction.
// Amount is signed: positive for credits (inflow), negative for debits (outflow).
type Transaction struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// CategoryTotal is an aggregated expense total for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// AnalysisResult is the output of one analysis run over a set of transactions.
type AnalysisResult struct {
	TotalIncome   float64         `json:"totalIncome"`
	TotalExpenses float64         `json:"totalExpenses"`
	NetBalance    float64         `json:"netBalance"`
	TopCategories []CategoryTotal `json:"topCategories"`
	Summary       string          `json:"summary"`
}
