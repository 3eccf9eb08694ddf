package renewal

import (
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// Rate-shift assumptions for variable scenarios: a 1% cut (best), the quoted
// rate (expected), and a 2% hike (worst).
var (
	bestCaseShift    = decimal.NewFromFloat(-0.01)
	worstCaseShift   = decimal.NewFromFloat(0.02)
	sensitivityShift = decimal.NewFromFloat(0.0025)
)

// breakEvenPlaceholderSpread is the default break-even margin over the quoted
// rate, used until planner-level pairing finds a comparable fixed scenario.
var breakEvenPlaceholderSpread = decimal.NewFromFloat(0.005)

// assessVariableRisk re-simulates the new mortgage under the best, expected
// and worst rate assumptions and derives payment/interest ranges, a 0-100
// volatility score, and the payment change per 0.25% rate move.
func (p *Planner) assessVariableRisk(cfg domain.ScenarioConfig, principal, rate decimal.Decimal, amortMonths, termYears int) *domain.RiskProfile {
	trial := func(shift decimal.Decimal) (payment, termInterest decimal.Decimal) {
		mortgage, schedule, err := p.simulate(cfg, principal, rate.Add(shift), amortMonths, termYears)
		if err != nil {
			return decimal.Zero, decimal.Zero
		}
		if len(schedule) > 0 {
			endOfTerm := termYears * 12
			if endOfTerm > len(schedule)-1 {
				endOfTerm = len(schedule) - 1
			}
			termInterest = schedule[endOfTerm].CumulativeInterest
		}
		return mortgage.MonthlyPayment, termInterest
	}

	bestPayment, bestInterest := trial(bestCaseShift)
	basePayment, _ := trial(decimal.Zero)
	worstPayment, worstInterest := trial(worstCaseShift)
	shiftedPayment, _ := trial(sensitivityShift)

	profile := &domain.RiskProfile{
		PaymentLow:      bestPayment,
		PaymentHigh:     worstPayment,
		InterestLow:     bestInterest,
		InterestHigh:    worstInterest,
		RateSensitivity: shiftedPayment.Sub(basePayment),
		BreakEvenRate:   rate.Add(breakEvenPlaceholderSpread),
	}

	if basePayment.IsPositive() {
		volatilityPct := worstPayment.Sub(bestPayment).Div(basePayment).Mul(decimal.NewFromInt(100))
		score := volatilityPct.Mul(decimal.NewFromInt(2)).Round(0).IntPart()
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		profile.RiskScore = int(score)
	}

	return profile
}
