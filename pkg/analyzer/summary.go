package analyzer

import (
	"fmt"
	"strings"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// buildSummary renders the fixed-template narrative report: header metrics,
// per-category breakdown, health assessment and recommendations.
func (a *Analyzer) buildSummary(income, expenses float64, top []models.CategoryTotal) string {
	net := income - expenses

	savingsRate := 0.0
	savingsRateText := "0"
	if income > 0 {
		savingsRate = net / income * 100
		savingsRateText = fmt.Sprintf("%.1f", savingsRate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Financial Summary:\n")
	fmt.Fprintf(&b, "• Total Income: %s\n", a.formatCurrency(income))
	fmt.Fprintf(&b, "• Total Expenses: %s\n", a.formatCurrency(expenses))
	fmt.Fprintf(&b, "• Net Balance: %s\n", a.formatCurrency(net))
	fmt.Fprintf(&b, "• Savings Rate: %s%%", savingsRateText)

	if len(top) > 0 {
		fmt.Fprintf(&b, "\n\nSpending Breakdown:")
		for _, c := range top {
			pct := 0.0
			if expenses > 0 {
				pct = c.Total / expenses * 100
			}
			fmt.Fprintf(&b, "\n• %s: %s (%.1f%% of expenses)", c.Category, a.formatCurrency(c.Total), pct)
		}
	}

	fmt.Fprintf(&b, "\n\nFinancial Health Assessment:\n")
	fmt.Fprintf(&b, "• Your savings rate is %s (%s%% of income)\n", savingsHealth(savingsRate), savingsRateText)

	// The expense ratio is undefined on zero income; the assessment line is
	// dropped rather than dividing by zero.
	expenseRatio := 0.0
	if income > 0 {
		expenseRatio = expenses / income
		fmt.Fprintf(&b, "• Your expense ratio is %s (%.1f%% of income)\n", expenseHealth(expenseRatio), expenseRatio*100)
	}

	if net >= 0 {
		fmt.Fprintf(&b, "• You're maintaining a positive balance of %s", a.formatCurrency(net))
	} else {
		fmt.Fprintf(&b, "• Warning: You're in a deficit of %s", a.formatCurrency(net))
	}

	fmt.Fprintf(&b, "\n\nRecommendations:\n")
	if savingsRate < 20 {
		fmt.Fprintf(&b, "• Consider increasing your savings rate to at least 20%% of income\n")
	} else {
		fmt.Fprintf(&b, "• Great job maintaining a healthy savings rate!\n")
	}
	if expenseRatio > 0.7 {
		fmt.Fprintf(&b, "• Look for ways to reduce expenses in your top spending categories")
	} else {
		fmt.Fprintf(&b, "• Keep maintaining your current expense management")
	}

	return b.String()
}

func savingsHealth(rate float64) string {
	switch {
	case rate >= 20:
		return "healthy"
	case rate >= 10:
		return "moderate"
	default:
		return "low"
	}
}

func expenseHealth(ratio float64) string {
	switch {
	case ratio <= 0.5:
		return "well-managed"
	case ratio <= 0.7:
		return "moderate"
	default:
		return "high"
	}
}

// formatCurrency renders an amount as a symbol-prefixed, thousands-grouped
// string with two decimals, e.g. ₦1,234,567.89. Presentation only: aggregate
// math never goes through here.
func (a *Analyzer) formatCurrency(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	return a.symbol + sign + strings.Join(grouped, ",") + "." + fracPart
}
