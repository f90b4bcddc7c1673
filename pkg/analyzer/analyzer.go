package analyzer

import (
	"sort"

	"github.com/Thomson-dev/bank-summary-agent/pkg/categories"
	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// DefaultTopN is how many expense categories the breakdown keeps.
const DefaultTopN = 5

// DefaultCurrencySymbol prefixes every formatted amount.
const DefaultCurrencySymbol = "₦"

// Analyzer computes aggregate financial metrics over a transaction set. It is
// a pure computation: no state is shared between calls.
type Analyzer struct {
	symbol string
	topN   int
}

// New returns an Analyzer. Zero values select the defaults.
func New(symbol string, topN int) *Analyzer {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Analyzer{symbol: symbol, topN: topN}
}

// Analyze computes income, expenses, net balance, the top spending categories
// and the narrative summary. It never fails: an empty input yields zeroed
// aggregates and a summary with zero-valued metrics.
func (a *Analyzer) Analyze(txs []models.Transaction) models.AnalysisResult {
	income := totalIncome(txs)
	expenses := totalExpenses(txs)
	top := a.topCategories(txs)

	return models.AnalysisResult{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetBalance:    income - expenses,
		TopCategories: top,
		Summary:       a.buildSummary(income, expenses, top),
	}
}

func totalIncome(txs []models.Transaction) float64 {
	var total float64
	for _, t := range txs {
		if t.Amount > 0 {
			total += t.Amount
		}
	}
	return total
}

func totalExpenses(txs []models.Transaction) float64 {
	var total float64
	for _, t := range txs {
		if t.Amount < 0 {
			total += -t.Amount
		}
	}
	return total
}

// topCategories groups expense transactions by category and returns the topN
// largest totals, descending. Ties keep first-encountered order.
func (a *Analyzer) topCategories(txs []models.Transaction) []models.CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		category := t.Category
		if category == "" {
			category = categories.Uncategorized
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += -t.Amount
	}

	result := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, models.CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})

	if len(result) > a.topN {
		result = result[:a.topN]
	}
	return result
}
