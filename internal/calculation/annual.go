package calculation

import (
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// AnnualSummaries reduces a schedule into per-calendar-year totals, in
// chronological order. Each year's closing balance is the ending balance of
// its last entry.
func AnnualSummaries(entries []domain.ScheduleEntry) []domain.AnnualSummary {
	if len(entries) == 0 {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	summaries := make([]domain.AnnualSummary, 0, len(entries)/12+1)
	var current *domain.AnnualSummary

	for _, entry := range entries {
		if current == nil || entry.Year != current.Year {
			summaries = append(summaries, domain.AnnualSummary{Year: entry.Year})
			current = &summaries[len(summaries)-1]
		}
		current.PrincipalPaid = current.PrincipalPaid.Add(entry.PrincipalPortion)
		current.InterestPaid = current.InterestPaid.Add(entry.InterestPortion)
		current.YearEndBalance = entry.EndingBalance
	}

	for i := range summaries {
		s := &summaries[i]
		s.PrincipalPaid = s.PrincipalPaid.Round(2)
		s.InterestPaid = s.InterestPaid.Round(2)
		s.TotalPaid = s.PrincipalPaid.Add(s.InterestPaid)
		if s.TotalPaid.IsPositive() {
			s.PrincipalShare = s.PrincipalPaid.Div(s.TotalPaid).Mul(hundred).Round(1)
			s.InterestShare = s.InterestPaid.Div(s.TotalPaid).Mul(hundred).Round(1)
		}
	}

	return summaries
}
