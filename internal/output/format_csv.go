package output

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
)

// CSVFormatter formats reports as CSV.
type CSVFormatter struct{}

// Name returns the format name.
func (cf *CSVFormatter) Name() string { return "csv" }

// FormatSchedule writes the full month-by-month schedule, one row per
// payment.
func (cf *CSVFormatter) FormatSchedule(report *ScheduleReport) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Payment Number",
		"Date",
		"Beginning Balance",
		"Payment",
		"Principal",
		"Extra Annual",
		"Interest",
		"Ending Balance",
		"Cumulative Principal",
		"Cumulative Interest",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, entry := range report.Schedule {
		row := []string{
			formatInt(entry.PaymentNumber),
			entry.Date.Format("2006-01-02"),
			entry.BeginningBalance.StringFixed(2),
			entry.Payment.StringFixed(2),
			entry.PrincipalPortion.StringFixed(2),
			entry.ExtraAnnualPortion.StringFixed(2),
			entry.InterestPortion.StringFixed(2),
			entry.EndingBalance.StringFixed(2),
			entry.CumulativePrincipal.StringFixed(2),
			entry.CumulativeInterest.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatScenarios writes one row per scenario with the risk columns empty for
// fixed scenarios.
func (cf *CSVFormatter) FormatScenarios(results *domain.PlannerResults) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Rate",
		"Rate Type",
		"Paydown",
		"Extra Monthly",
		"Extra Annual",
		"New Principal",
		"Amortization Months",
		"Monthly Payment",
		"Payoff Months",
		"Term Interest",
		"Term Principal",
		"Remaining Balance",
		"Payment Low",
		"Payment High",
		"Risk Score",
		"Rate Sensitivity",
		"Break-Even Rate",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		row := []string{
			sc.Name,
			sc.Rate.StringFixed(4),
			string(sc.RateType),
			sc.Paydown.StringFixed(2),
			sc.ExtraMonthly.StringFixed(2),
			sc.ExtraAnnual.StringFixed(2),
			sc.NewPrincipal.StringFixed(2),
			formatInt(sc.AmortizationMonths),
			sc.MonthlyPayment.StringFixed(2),
			formatInt(sc.PayoffMonths),
			sc.TermInterest.StringFixed(2),
			sc.TermPrincipal.StringFixed(2),
			sc.RemainingBalance.StringFixed(2),
			"", "", "", "", "",
		}
		if sc.Risk != nil {
			row[13] = sc.Risk.PaymentLow.StringFixed(2)
			row[14] = sc.Risk.PaymentHigh.StringFixed(2)
			row[15] = formatInt(sc.Risk.RiskScore)
			row[16] = sc.Risk.RateSensitivity.StringFixed(2)
			row[17] = sc.Risk.BreakEvenRate.StringFixed(4)
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
