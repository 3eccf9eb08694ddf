package calculation

import (
	"math"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// CompoundInterest projects the growth of a lump sum compounded monthly over
// the given number of months, with optional level monthly contributions. Used
// to show what unspent paydown capacity could earn instead.
func CompoundInterest(principal, annualRate decimal.Decimal, months int, monthlyContribution decimal.Decimal) domain.InvestmentProjection {
	p := principal.InexactFloat64()
	c := monthlyContribution.InexactFloat64()
	monthlyRate := annualRate.InexactFloat64() / 12

	var finalAmount float64
	switch {
	case c == 0:
		finalAmount = p * math.Pow(1+monthlyRate, float64(months))
	case monthlyRate == 0:
		finalAmount = p + c*float64(months)
	default:
		growth := math.Pow(1+monthlyRate, float64(months))
		fvPrincipal := p * growth
		fvContributions := c * ((growth - 1) / monthlyRate)
		finalAmount = fvPrincipal + fvContributions
	}

	contributions := principal.Add(monthlyContribution.Mul(decimal.NewFromInt(int64(months))))
	final := decimal.NewFromFloat(finalAmount).Round(2)

	effectiveReturn := decimal.Zero
	if contributions.IsPositive() {
		effectiveReturn = final.Div(contributions).Sub(decimal.NewFromInt(1)).Round(4)
	}

	return domain.InvestmentProjection{
		Principal:           principal,
		AnnualRate:          annualRate,
		Months:              months,
		MonthlyContribution: monthlyContribution,
		TotalContributions:  contributions.Round(2),
		FinalAmount:         final,
		InterestEarned:      final.Sub(contributions).Round(2),
		EffectiveReturn:     effectiveReturn,
	}
}
