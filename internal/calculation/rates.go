package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// EffectiveMonthlyRate converts a nominal annual rate quoted with Canadian
// semi-annual compounding into the effective monthly rate applied to the
// balance each period. A zero annual rate yields exactly zero; callers branch
// on that before dividing by the rate.
func EffectiveMonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		return decimal.Zero
	}
	r := annualRate.InexactFloat64()
	semiAnnual := r / 2
	effectiveAnnual := math.Pow(1+semiAnnual, 2) - 1
	monthly := math.Pow(1+effectiveAnnual, 1.0/12) - 1
	return decimal.NewFromFloat(monthly)
}
