package analyzer

import (
	"sort"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// Trend classifies how spending evolved over a statement period.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// SpendingTrend compares the absolute expense total of the earlier half of
// date-sorted expense transactions against the later half. A relative change
// beyond ±10% is reported as increasing or decreasing. Fewer than two dated
// expense transactions is always stable.
func SpendingTrend(txs []models.Transaction) Trend {
	var dated []models.Transaction
	for _, t := range txs {
		if t.Amount < 0 && t.Date != "" {
			dated = append(dated, t)
		}
	}
	if len(dated) < 2 {
		return TrendStable
	}

	// Normalized dates are YYYY-MM-DD, so lexicographic order is date order.
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].Date < dated[j].Date })

	mid := len(dated) / 2
	var firstHalf, secondHalf float64
	for _, t := range dated[:mid] {
		firstHalf += -t.Amount
	}
	for _, t := range dated[mid:] {
		secondHalf += -t.Amount
	}

	if firstHalf == 0 {
		if secondHalf > 0 {
			return TrendIncreasing
		}
		return TrendStable
	}

	change := (secondHalf - firstHalf) / firstHalf * 100
	switch {
	case change > 10:
		return TrendIncreasing
	case change < -10:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
