// Package renewal evaluates mortgage renewal scenarios: given the balance a
// mortgage carries into its term end, it derives and simulates candidate new
// mortgages, scores variable-rate risk, and estimates fixed/variable
// break-even rates.
package renewal

import (
	"fmt"
	"time"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/calculation"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// illustrativeReturnRates are the fixed annual returns used for the
// opportunity-cost projection of unspent paydown capacity.
var illustrativeReturnRates = []decimal.Decimal{
	decimal.NewFromFloat(0.03),
	decimal.NewFromFloat(0.05),
	decimal.NewFromFloat(0.10),
}

// sensitivityStep converts rate-sensitivity steps back into a rate: one step
// is a 0.25% move.
var sensitivityStep = decimal.NewFromFloat(0.0025)

// Planner runs a batch of renewal scenarios against a prior mortgage.
// Scenarios are independent; the planner runs them sequentially and performs
// the cross-scenario break-even pairing at the end.
type Planner struct {
	Prior *calculation.Mortgage

	renewalStart time.Time
	logger       calculation.Logger
}

// NewPlanner creates a planner for the given mortgage. The prior mortgage's
// schedule must have been generated so its balance at renewal is known; if it
// has not been, the planner generates it.
func NewPlanner(prior *calculation.Mortgage) *Planner {
	if prior.BalanceAtRenewal.IsZero() && prior.PayoffMonths == 0 {
		prior.AmortizationSchedule()
	}
	return &Planner{
		Prior:        prior,
		renewalStart: renewalStartDate(prior),
		logger:       calculation.NopLogger{},
	}
}

// SetLogger injects a diagnostics logger. A nil logger restores the no-op
// default.
func (p *Planner) SetLogger(logger calculation.Logger) {
	if logger == nil {
		p.logger = calculation.NopLogger{}
		return
	}
	p.logger = logger
}

// Analyze runs every scenario, projects the opportunity cost of unspent
// paydown capacity against maxPaydown, and estimates break-even rates for
// variable scenarios. Configuration errors surface before any simulation
// runs.
func (p *Planner) Analyze(configs []domain.ScenarioConfig, maxPaydown decimal.Decimal) (*domain.PlannerResults, error) {
	for i := range configs {
		if configs[i].Rate == nil {
			return nil, fmt.Errorf("scenario %d (%q): rate is required", i, configs[i].Name)
		}
	}

	results := make([]domain.ScenarioResult, 0, len(configs))
	investments := make(map[string][]domain.InvestmentProjection)

	for _, cfg := range configs {
		result, err := p.runScenario(cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		termYears := cfg.TermYears
		if termYears <= 0 {
			termYears = DefaultTermYears
		}
		unspent := maxPaydown.Sub(cfg.Paydown)
		if unspent.IsPositive() {
			projections := make([]domain.InvestmentProjection, 0, len(illustrativeReturnRates))
			for _, rate := range illustrativeReturnRates {
				projections = append(projections,
					calculation.CompoundInterest(unspent, rate, termYears*12, decimal.Zero))
			}
			investments[cfg.Name] = projections
		}
	}

	p.calculateBreakEvenRates(results)

	return &domain.PlannerResults{
		Scenarios:   results,
		Investments: investments,
		MaxPaydown:  maxPaydown,
	}, nil
}

// calculateBreakEvenRates pairs each variable scenario with the fixed
// scenario sharing its paydown and extra-payment parameters whose rate is
// numerically closest, then estimates the variable rate at which term
// interest would match.
//
// The estimate extrapolates linearly through rate sensitivity: the interest
// gap divided by (sensitivity x 60 payments) gives the number of 0.25% steps
// the variable rate could rise before matching the fixed cost. When the
// variable scenario is already the more expensive one, break-even is set
// 0.5% below its rate.
func (p *Planner) calculateBreakEvenRates(results []domain.ScenarioResult) {
	for i := range results {
		variable := &results[i]
		if variable.RateType != domain.RateTypeVariable || variable.Risk == nil {
			continue
		}

		var fixed *domain.ScenarioResult
		var fixedDiff decimal.Decimal
		for j := range results {
			candidate := &results[j]
			if candidate.RateType != domain.RateTypeFixed {
				continue
			}
			if !candidate.Paydown.Equal(variable.Paydown) ||
				!candidate.ExtraMonthly.Equal(variable.ExtraMonthly) ||
				!candidate.ExtraAnnual.Equal(variable.ExtraAnnual) ||
				candidate.DoubleUp != variable.DoubleUp {
				continue
			}
			diff := candidate.Rate.Sub(variable.Rate).Abs()
			if fixed == nil || diff.LessThan(fixedDiff) {
				fixed = candidate
				fixedDiff = diff
			}
		}
		if fixed == nil {
			continue // placeholder from the risk model stands
		}

		if fixed.TermInterest.GreaterThan(variable.TermInterest) {
			if variable.Risk.RateSensitivity.IsZero() {
				continue
			}
			interestGap := fixed.TermInterest.Sub(variable.TermInterest)
			steps := interestGap.Div(variable.Risk.RateSensitivity.Mul(decimal.NewFromInt(60)))
			variable.Risk.BreakEvenRate = variable.Rate.Add(steps.Mul(sensitivityStep))
		} else {
			variable.Risk.BreakEvenRate = variable.Rate.Sub(breakEvenPlaceholderSpread)
		}
		p.logger.Debugf("scenario %q: break-even rate %s against fixed %q",
			variable.Name, variable.Risk.BreakEvenRate, fixed.Name)
	}
}

// renewalStartDate is the first day after the prior mortgage's term: its
// start date advanced by the term length. Scenario schedules begin there so
// runs are deterministic.
func renewalStartDate(prior *calculation.Mortgage) time.Time {
	date := prior.Terms.StartDate
	for i := 0; i < prior.Terms.TermMonths; i++ {
		if date.Month() == time.December {
			date = time.Date(date.Year()+1, time.January, date.Day(), 0, 0, 0, 0, date.Location())
		} else {
			date = time.Date(date.Year(), date.Month()+1, date.Day(), 0, 0, 0, 0, date.Location())
		}
	}
	return date
}
