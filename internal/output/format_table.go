package output

import (
	"fmt"
	"strings"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats reports as console tables.
type TableFormatter struct{}

// Name returns the format name.
func (tf *TableFormatter) Name() string { return "table" }

// FormatSchedule renders the mortgage summary, the annual rollup, and the
// term summary. The full month-by-month schedule is left to the csv and json
// formats.
func (tf *TableFormatter) FormatSchedule(report *ScheduleReport) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("MORTGAGE AMORTIZATION SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Principal:         $%s\n", formatAmount(report.Terms.Principal)))
	sb.WriteString(fmt.Sprintf("Annual Rate:       %s%%\n", formatPercent(report.Terms.AnnualRate)))
	sb.WriteString(fmt.Sprintf("Amortization:      %d months (%d years)\n",
		report.Terms.AmortizationMonths, report.Terms.AmortizationMonths/12))
	sb.WriteString(fmt.Sprintf("Term:              %d months\n", report.Terms.TermMonths))
	sb.WriteString(fmt.Sprintf("Monthly Payment:   $%s\n", report.Payment.StringFixed(2)))
	sb.WriteString("\n")

	sb.WriteString("ANNUAL SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %14s %14s %14s %8s %14s\n",
		"Year", "Principal", "Interest", "Total", "Int %", "Year-End Bal"))
	for _, year := range report.Annual {
		sb.WriteString(fmt.Sprintf("%-6d %14s %14s %14s %8s %14s\n",
			year.Year,
			"$"+formatAmount(year.PrincipalPaid),
			"$"+formatAmount(year.InterestPaid),
			"$"+formatAmount(year.TotalPaid),
			year.InterestShare.StringFixed(1),
			"$"+formatAmount(year.YearEndBalance)))
	}
	sb.WriteString("\n")

	sb.WriteString("TERM SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Payments in Term:     %d\n", report.Term.PaymentsInTerm))
	sb.WriteString(fmt.Sprintf("Term Interest:        $%s\n", formatAmount(report.Term.TermInterest)))
	sb.WriteString(fmt.Sprintf("Term Principal:       $%s\n", formatAmount(report.Term.TermPrincipal)))
	sb.WriteString(fmt.Sprintf("Total Paid in Term:   $%s\n", formatAmount(report.Term.TotalPaid)))
	sb.WriteString(fmt.Sprintf("Interest %% of Total:  %s%%\n", report.Term.InterestShare.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("Payments to Payoff:   %d\n", report.Term.PaymentsToPayoff))

	return []byte(sb.String()), nil
}

// FormatScenarios renders the scenario comparison table, variable-rate risk
// details, and the opportunity-cost projections.
func (tf *TableFormatter) FormatScenarios(results *domain.PlannerResults) ([]byte, error) {
	var sb strings.Builder

	nameWidth := 38
	numWidth := 13

	sb.WriteString("RENEWAL SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 120) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %6s %9s %*s %*s %6s %*s %*s %*s\n",
		nameWidth, "Scenario",
		"Rate", "Type",
		numWidth, "Principal",
		numWidth, "Payment",
		"Amort",
		numWidth, "Term Int",
		numWidth, "Term Princ",
		numWidth, "Remaining"))
	sb.WriteString(strings.Repeat("-", 120) + "\n")

	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		sb.WriteString(fmt.Sprintf("%-*s %5s%% %9s %*s %*s %6d %*s %*s %*s\n",
			nameWidth, truncate(sc.Name, nameWidth),
			formatPercent(sc.Rate), sc.RateType,
			numWidth, "$"+formatAmount(sc.NewPrincipal),
			numWidth, "$"+sc.MonthlyPayment.StringFixed(2),
			sc.AmortizationMonths,
			numWidth, "$"+formatAmount(sc.TermInterest),
			numWidth, "$"+formatAmount(sc.TermPrincipal),
			numWidth, "$"+formatAmount(sc.RemainingBalance)))
	}
	sb.WriteString(strings.Repeat("=", 120) + "\n")

	variable := variableScenarios(results)
	if len(variable) > 0 {
		sb.WriteString("\nVARIABLE RATE RISK\n")
		sb.WriteString(strings.Repeat("-", 120) + "\n")
		for _, sc := range variable {
			risk := sc.Risk
			sb.WriteString(fmt.Sprintf("\n%s:\n", sc.Name))
			sb.WriteString(fmt.Sprintf("  Payment Range:    $%s - $%s\n",
				risk.PaymentLow.StringFixed(2), risk.PaymentHigh.StringFixed(2)))
			sb.WriteString(fmt.Sprintf("  Interest Range:   $%s - $%s\n",
				formatAmount(risk.InterestLow), formatAmount(risk.InterestHigh)))
			sb.WriteString(fmt.Sprintf("  Risk Score:       %d/100\n", risk.RiskScore))
			sb.WriteString(fmt.Sprintf("  Sensitivity:      $%s per 0.25%% move\n",
				risk.RateSensitivity.StringFixed(2)))
			sb.WriteString(fmt.Sprintf("  Break-Even Rate:  %s%%\n", formatPercent(risk.BreakEvenRate)))
		}
	}

	if len(results.Investments) > 0 {
		sb.WriteString("\nUNSPENT PAYDOWN OPPORTUNITY COST\n")
		sb.WriteString(strings.Repeat("-", 120) + "\n")
		sb.WriteString(fmt.Sprintf("Max paydown available: $%s\n", formatAmount(results.MaxPaydown)))
		for i := range results.Scenarios {
			sc := &results.Scenarios[i]
			projections, ok := results.Investments[sc.Name]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n%s (invest $%s):\n",
				sc.Name, formatAmount(results.MaxPaydown.Sub(sc.Paydown))))
			for _, proj := range projections {
				sb.WriteString(fmt.Sprintf("  at %s%%: $%s after %d months (+$%s)\n",
					formatPercent(proj.AnnualRate),
					formatAmount(proj.FinalAmount),
					proj.Months,
					formatAmount(proj.InterestEarned)))
			}
		}
	}

	return []byte(sb.String()), nil
}

// variableScenarios returns the scenarios carrying a risk profile, in order.
func variableScenarios(results *domain.PlannerResults) []*domain.ScenarioResult {
	var out []*domain.ScenarioResult
	for i := range results.Scenarios {
		if results.Scenarios[i].Risk != nil {
			out = append(out, &results.Scenarios[i])
		}
	}
	return out
}

// formatAmount formats a currency amount with thousands separators, no cents.
func formatAmount(d decimal.Decimal) string {
	whole := d.Round(0).IntPart()
	negative := whole < 0
	if negative {
		whole = -whole
	}

	s := fmt.Sprintf("%d", whole)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if negative {
		s = "-" + s
	}
	return s
}

// formatPercent formats a decimal rate (0.045) as a percentage string (4.50).
func formatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

// truncate truncates a string to maxLen.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
