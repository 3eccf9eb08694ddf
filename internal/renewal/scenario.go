package renewal

import (
	"fmt"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/calculation"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTermYears is the new term length applied when a scenario omits one.
const DefaultTermYears = 5

// standardAmortizationYears are the amortization lengths Canadian lenders
// typically offer.
var standardAmortizationYears = []int{5, 10, 15, 20, 25, 30}

// runScenario derives the new mortgage for one scenario, simulates it, and
// extracts the term-window aggregates.
func (p *Planner) runScenario(cfg domain.ScenarioConfig) (domain.ScenarioResult, error) {
	if cfg.Rate == nil {
		return domain.ScenarioResult{}, fmt.Errorf("scenario %q: rate is required", cfg.Name)
	}
	rate := *cfg.Rate
	if rate.IsNegative() {
		return domain.ScenarioResult{}, fmt.Errorf("scenario %q: rate cannot be negative, got %s", cfg.Name, rate)
	}

	termYears := cfg.TermYears
	if termYears <= 0 {
		termYears = DefaultTermYears
	}
	rateType := cfg.RateType
	if rateType == "" {
		rateType = domain.RateTypeFixed
	}

	newPrincipal := p.Prior.BalanceAtRenewal.Sub(cfg.Paydown)
	result := domain.ScenarioResult{
		Name:         cfg.Name,
		Rate:         rate,
		RateType:     rateType,
		Paydown:      cfg.Paydown,
		ExtraMonthly: cfg.ExtraMonthly,
		ExtraAnnual:  cfg.ExtraAnnual,
		DoubleUp:     cfg.DoubleUp,
		NewPrincipal: newPrincipal.Round(2),
	}

	// Paydown covers the whole balance: nothing left to amortize.
	if newPrincipal.LessThanOrEqual(decimal.Zero) {
		p.logger.Debugf("scenario %q: paid off at renewal (principal %s)", cfg.Name, newPrincipal)
		return result, nil
	}

	amortMonths := cfg.AmortizationMonths
	if amortMonths <= 0 {
		amortMonths = p.findBestStandardAmortization(newPrincipal, rate)
		p.logger.Debugf("scenario %q: selected %d-month amortization", cfg.Name, amortMonths)
	}
	result.AmortizationMonths = amortMonths

	mortgage, schedule, err := p.simulate(cfg, newPrincipal, rate, amortMonths, termYears)
	if err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("scenario %q: %w", cfg.Name, err)
	}
	result.MonthlyPayment = mortgage.MonthlyPayment
	result.PayoffMonths = mortgage.PayoffMonths

	if len(schedule) > 0 {
		endOfTerm := termYears * 12
		if endOfTerm > len(schedule)-1 {
			endOfTerm = len(schedule) - 1
		}
		entry := schedule[endOfTerm]
		result.TermInterest = entry.CumulativeInterest
		result.TermPrincipal = entry.CumulativePrincipal
		result.RemainingBalance = mortgage.BalanceAtRenewal.Round(2)
	}

	if rateType == domain.RateTypeVariable {
		result.Risk = p.assessVariableRisk(cfg, newPrincipal, rate, amortMonths, termYears)
	}

	return result, nil
}

// simulate builds and runs the new mortgage for a scenario at the given rate.
// The new term doubles as the sub-simulation's renewal checkpoint so the
// balance at term end is captured.
func (p *Planner) simulate(cfg domain.ScenarioConfig, principal, rate decimal.Decimal, amortMonths, termYears int) (*calculation.Mortgage, []domain.ScheduleEntry, error) {
	termMonths := termYears * 12
	if termMonths > amortMonths {
		termMonths = amortMonths
	}

	mortgage, err := calculation.NewMortgage(domain.MortgageTerms{
		Principal:          principal,
		AnnualRate:         rate,
		AmortizationMonths: amortMonths,
		TermMonths:         termMonths,
		StartDate:          p.renewalStart,
	})
	if err != nil {
		return nil, nil, err
	}
	mortgage.SetLogger(p.logger)

	mortgage.ExtraMonthly = cfg.ExtraMonthly
	if cfg.DoubleUp {
		mortgage.ExtraMonthly = mortgage.MonthlyPayment
	}
	mortgage.ExtraAnnual = cfg.ExtraAnnual

	return mortgage, mortgage.AmortizationSchedule(), nil
}

// findBestStandardAmortization scans the standard amortization lengths and
// picks the one whose payment is closest to the current mortgage's payment.
// Ties go to the shorter amortization.
func (p *Planner) findBestStandardAmortization(principal, rate decimal.Decimal) int {
	target := p.Prior.MonthlyPayment

	bestMonths := 0
	var bestDiff decimal.Decimal
	for i, years := range standardAmortizationYears {
		months := years * 12
		payment := calculation.MonthlyPayment(principal, rate, months)
		diff := payment.Sub(target).Abs()
		if i == 0 || diff.LessThan(bestDiff) {
			bestMonths = months
			bestDiff = diff
		}
	}
	return bestMonths
}
