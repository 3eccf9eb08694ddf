package renewal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/calculation"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// priorWithBalance builds a prior mortgage with a pinned renewal balance so
// scenario arithmetic is exact.
func priorWithBalance(t *testing.T, balance decimal.Decimal) *calculation.Mortgage {
	t.Helper()
	prior, err := calculation.NewMortgage(domain.MortgageTerms{
		Principal:          decimal.NewFromInt(500000),
		AnnualRate:         decimal.NewFromFloat(0.05),
		AmortizationMonths: 300,
		TermMonths:         60,
		StartDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	prior.BalanceAtRenewal = balance
	return prior
}

func TestNewPlanner_GeneratesPriorSchedule(t *testing.T) {
	prior, err := calculation.NewMortgage(domain.MortgageTerms{
		Principal:          decimal.NewFromInt(500000),
		AnnualRate:         decimal.NewFromFloat(0.05),
		AmortizationMonths: 300,
		TermMonths:         60,
		StartDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	NewPlanner(prior)
	assert.InDelta(t, 442537.87, prior.BalanceAtRenewal.InexactFloat64(), 2.0,
		"Planner should generate the prior schedule when missing")
}

func TestAnalyze_MissingRate(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	configs := []domain.ScenarioConfig{
		{Name: "ok", Rate: decimalPtr(decimal.NewFromFloat(0.05))},
		{Name: "broken"},
	}
	results, err := planner.Analyze(configs, decimal.Zero)

	assert.Error(t, err, "Should fail before any simulation runs")
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "rate is required")
}

func TestAnalyze_NegativeRate(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	_, err := planner.Analyze([]domain.ScenarioConfig{
		{Name: "bad", Rate: decimalPtr(decimal.NewFromFloat(-0.01))},
	}, decimal.Zero)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestAnalyze_Paydown(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{{
		Name:               "4.5% with paydown",
		Rate:               decimalPtr(decimal.NewFromFloat(0.045)),
		Paydown:            decimal.NewFromInt(100000),
		AmortizationMonths: 300,
	}}, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 1)

	sc := results.Scenarios[0]
	assert.True(t, sc.NewPrincipal.Equal(decimal.NewFromInt(350000)),
		"Paydown should come straight off the renewal balance, got %s", sc.NewPrincipal)

	expectedPayment := calculation.MonthlyPayment(decimal.NewFromInt(350000), decimal.NewFromFloat(0.045), 300)
	assert.True(t, sc.MonthlyPayment.Equal(expectedPayment),
		"Payment should be derived from the reduced principal")

	assert.True(t, sc.TermInterest.IsPositive())
	assert.True(t, sc.TermPrincipal.IsPositive())
	assert.True(t, sc.RemainingBalance.IsPositive())
	assert.True(t, sc.RemainingBalance.LessThan(sc.NewPrincipal),
		"Five years of payments should reduce the balance")
	assert.Nil(t, sc.Risk, "Fixed scenarios carry no risk profile")
}

func TestAnalyze_FullPaydown(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{{
		Name:    "paid off",
		Rate:    decimalPtr(decimal.NewFromFloat(0.05)),
		Paydown: decimal.NewFromInt(450000),
	}}, decimal.Zero)
	require.NoError(t, err)

	sc := results.Scenarios[0]
	assert.True(t, sc.NewPrincipal.IsZero(), "Nothing left to amortize")
	assert.True(t, sc.MonthlyPayment.IsZero())
	assert.Equal(t, 0, sc.AmortizationMonths)
	assert.Nil(t, sc.Risk)
}

func TestAnalyze_AutoAmortization(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{{
		Name:    "auto amortization",
		Rate:    decimalPtr(decimal.NewFromFloat(0.045)),
		Paydown: decimal.NewFromInt(100000),
	}}, decimal.Zero)
	require.NoError(t, err)

	// $350k at 4.5%: the 15-year payment sits closest to the prior $2908.
	assert.Equal(t, 180, results.Scenarios[0].AmortizationMonths,
		"Should pick the standard amortization whose payment is closest to the prior payment")
}

func TestAnalyze_VariableRisk(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{{
		Name:               "variable",
		Rate:               decimalPtr(decimal.NewFromFloat(0.045)),
		RateType:           domain.RateTypeVariable,
		AmortizationMonths: 300,
	}}, decimal.Zero)
	require.NoError(t, err)

	risk := results.Scenarios[0].Risk
	require.NotNil(t, risk, "Variable scenarios should carry a risk profile")

	assert.True(t, risk.PaymentHigh.GreaterThan(risk.PaymentLow),
		"A 2% hike should cost more than a 1% cut")
	assert.True(t, risk.InterestHigh.GreaterThan(risk.InterestLow))
	assert.True(t, risk.RateSensitivity.IsPositive(),
		"Payment should move with a 0.25% rate shift")
	assert.GreaterOrEqual(t, risk.RiskScore, 1)
	assert.LessOrEqual(t, risk.RiskScore, 100)

	// No comparable fixed scenario: the placeholder margin stands.
	assert.True(t, risk.BreakEvenRate.Equal(decimal.NewFromFloat(0.05)),
		"Break-even should default to 0.5%% above the quoted rate, got %s", risk.BreakEvenRate)
}

func TestAnalyze_BreakEvenPairing(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	variableRate := decimal.NewFromFloat(0.045)
	results, err := planner.Analyze([]domain.ScenarioConfig{
		{
			Name:               "fixed 5.5%",
			Rate:               decimalPtr(decimal.NewFromFloat(0.055)),
			AmortizationMonths: 300,
		},
		{
			Name:               "variable 4.5%",
			Rate:               decimalPtr(variableRate),
			RateType:           domain.RateTypeVariable,
			AmortizationMonths: 300,
		},
	}, decimal.Zero)
	require.NoError(t, err)

	variable := results.Scenarios[1]
	require.NotNil(t, variable.Risk)

	// The fixed scenario costs more, so the variable rate has room to rise.
	assert.True(t, variable.Risk.BreakEvenRate.GreaterThan(variableRate),
		"Break-even should sit above the quoted variable rate, got %s", variable.Risk.BreakEvenRate)
}

func TestAnalyze_BreakEven_VariableAlreadyExpensive(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{
		{
			Name:               "fixed 4%",
			Rate:               decimalPtr(decimal.NewFromFloat(0.04)),
			AmortizationMonths: 300,
		},
		{
			Name:               "variable 6%",
			Rate:               decimalPtr(decimal.NewFromFloat(0.06)),
			RateType:           domain.RateTypeVariable,
			AmortizationMonths: 300,
		},
	}, decimal.Zero)
	require.NoError(t, err)

	variable := results.Scenarios[1]
	require.NotNil(t, variable.Risk)
	assert.True(t, variable.Risk.BreakEvenRate.Equal(decimal.NewFromFloat(0.055)),
		"Break-even should drop 0.5%% when the variable rate is already the worse deal, got %s",
		variable.Risk.BreakEvenRate)
}

func TestAnalyze_BreakEvenPairing_RequiresMatchingExtras(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	variableRate := decimal.NewFromFloat(0.045)
	results, err := planner.Analyze([]domain.ScenarioConfig{
		{
			Name:               "fixed with paydown",
			Rate:               decimalPtr(decimal.NewFromFloat(0.055)),
			Paydown:            decimal.NewFromInt(50000),
			AmortizationMonths: 300,
		},
		{
			Name:               "variable no paydown",
			Rate:               decimalPtr(variableRate),
			RateType:           domain.RateTypeVariable,
			AmortizationMonths: 300,
		},
	}, decimal.Zero)
	require.NoError(t, err)

	variable := results.Scenarios[1]
	require.NotNil(t, variable.Risk)
	assert.True(t, variable.Risk.BreakEvenRate.Equal(decimal.NewFromFloat(0.05)),
		"Mismatched paydowns should not pair; placeholder should stand")
}

func TestAnalyze_Investments(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{
		{
			Name:               "partial paydown",
			Rate:               decimalPtr(decimal.NewFromFloat(0.05)),
			Paydown:            decimal.NewFromInt(25000),
			AmortizationMonths: 300,
		},
		{
			Name:               "full paydown",
			Rate:               decimalPtr(decimal.NewFromFloat(0.05)),
			Paydown:            decimal.NewFromInt(100000),
			AmortizationMonths: 300,
		},
	}, decimal.NewFromInt(100000))
	require.NoError(t, err)

	projections, ok := results.Investments["partial paydown"]
	require.True(t, ok, "Unspent capacity should get projections")
	require.Len(t, projections, 3, "One projection per illustrative return rate")

	for _, p := range projections {
		assert.True(t, p.Principal.Equal(decimal.NewFromInt(75000)),
			"Projection should invest the unspent portion")
		assert.Equal(t, 60, p.Months, "Projection should span the new term")
		assert.True(t, p.FinalAmount.GreaterThan(p.Principal))
	}

	_, ok = results.Investments["full paydown"]
	assert.False(t, ok, "Spending the whole capacity leaves nothing to invest")

	assert.True(t, results.MaxPaydown.Equal(decimal.NewFromInt(100000)))
}

func TestAnalyze_DoubleUp(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	results, err := planner.Analyze([]domain.ScenarioConfig{{
		Name:               "double up",
		Rate:               decimalPtr(decimal.NewFromFloat(0.05)),
		AmortizationMonths: 300,
		DoubleUp:           true,
	}}, decimal.Zero)
	require.NoError(t, err)

	sc := results.Scenarios[0]
	assert.Greater(t, sc.PayoffMonths, 0, "Doubled payments should pay off early")
	assert.Less(t, sc.PayoffMonths, 150, "Doubling should roughly halve the payoff horizon")
}

func TestFindBestStandardAmortization_PrefersShorterOnHighTarget(t *testing.T) {
	planner := NewPlanner(priorWithBalance(t, decimal.NewFromInt(450000)))

	// A small principal makes every standard payment fall below the prior
	// payment; the five-year option is the closest.
	months := planner.findBestStandardAmortization(decimal.NewFromInt(50000), decimal.NewFromFloat(0.05))
	assert.Equal(t, 60, months)
}

func TestRenewalStartDate(t *testing.T) {
	prior := priorWithBalance(t, decimal.NewFromInt(450000))
	planner := NewPlanner(prior)

	assert.Equal(t, time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC), planner.renewalStart,
		"Renewal should begin sixty months after the prior start date")
}
