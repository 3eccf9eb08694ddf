package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment computes the level monthly payment that amortizes principal
// over the given number of months at a nominal annual rate with semi-annual
// compounding. The result is rounded to the cent.
func MonthlyPayment(principal, annualRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	if annualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(months))).Round(2)
	}

	m := EffectiveMonthlyRate(annualRate).InexactFloat64()
	p := principal.InexactFloat64()
	compound := math.Pow(1+m, float64(months))
	payment := p * m * compound / (compound - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// RemainingBalance computes the outstanding principal after paymentsMade
// level payments, using the closed-form balance formula. It agrees with the
// schedule's running balance within rounding tolerance and is used for
// renewal-balance queries that do not need a full schedule.
func RemainingBalance(principal, annualRate, payment decimal.Decimal, paymentsMade int) decimal.Decimal {
	if annualRate.IsZero() {
		balance := principal.Sub(payment.Mul(decimal.NewFromInt(int64(paymentsMade))))
		return decimal.Max(decimal.Zero, balance)
	}

	m := EffectiveMonthlyRate(annualRate).InexactFloat64()
	p := principal.InexactFloat64()
	pay := payment.InexactFloat64()
	compound := math.Pow(1+m, float64(paymentsMade))
	balance := p*compound - pay*((compound-1)/m)
	return decimal.Max(decimal.Zero, decimal.NewFromFloat(balance).Round(2))
}
