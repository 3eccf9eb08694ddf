package domain

import (
	"github.com/shopspring/decimal"
)

// RateType distinguishes fixed-rate scenarios from variable-rate scenarios,
// which additionally carry a risk profile.
type RateType string

const (
	RateTypeFixed    RateType = "fixed"
	RateTypeVariable RateType = "variable"
)

// ScenarioConfig describes one renewal scenario to evaluate against the
// balance carried forward from the current mortgage's term end.
type ScenarioConfig struct {
	Name     string           `yaml:"name" json:"name"`
	Rate     *decimal.Decimal `yaml:"rate" json:"rate"`
	RateType RateType         `yaml:"rate_type" json:"rateType"`

	// Paydown is a lump-sum principal reduction applied before the new term.
	Paydown   decimal.Decimal `yaml:"paydown" json:"paydown"`
	TermYears int             `yaml:"term_years" json:"termYears"`

	// AmortizationMonths of 0 means select the standard amortization whose
	// payment is closest to the current mortgage's payment.
	AmortizationMonths int `yaml:"amortization_months" json:"amortizationMonths"`

	ExtraMonthly decimal.Decimal `yaml:"extra_monthly" json:"extraMonthly"`
	ExtraAnnual  decimal.Decimal `yaml:"extra_annual" json:"extraAnnual"`

	// DoubleUp replaces ExtraMonthly with the computed base payment, doubling
	// each scheduled payment.
	DoubleUp bool `yaml:"double_up" json:"doubleUp"`
}

// RiskProfile captures variable-rate sensitivity for a scenario: payment and
// interest ranges across best/expected/worst rate shifts, a 0-100 volatility
// score, and the payment change per 0.25% rate move.
type RiskProfile struct {
	PaymentLow      decimal.Decimal `json:"paymentLow"`
	PaymentHigh     decimal.Decimal `json:"paymentHigh"`
	InterestLow     decimal.Decimal `json:"interestLow"`
	InterestHigh    decimal.Decimal `json:"interestHigh"`
	RiskScore       int             `json:"riskScore"`
	RateSensitivity decimal.Decimal `json:"rateSensitivity"`
	BreakEvenRate   decimal.Decimal `json:"breakEvenRate"`
}

// ScenarioResult is the flattened outcome of one renewal scenario, the unit
// handed to the presentation layer. Risk is set only for variable scenarios.
type ScenarioResult struct {
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
	RateType RateType        `json:"rateType"`

	Paydown      decimal.Decimal `json:"paydown"`
	ExtraMonthly decimal.Decimal `json:"extraMonthly"`
	ExtraAnnual  decimal.Decimal `json:"extraAnnual"`
	DoubleUp     bool            `json:"doubleUp"`

	NewPrincipal       decimal.Decimal `json:"newPrincipal"`
	AmortizationMonths int             `json:"amortizationMonths"`
	MonthlyPayment     decimal.Decimal `json:"monthlyPayment"`
	PayoffMonths       int             `json:"payoffMonths"`

	TermInterest     decimal.Decimal `json:"termInterest"`
	TermPrincipal    decimal.Decimal `json:"termPrincipal"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`

	Risk *RiskProfile `json:"risk,omitempty"`
}

// InvestmentProjection is a compound-interest projection of capital not spent
// on a paydown, used as an opportunity-cost comparison.
type InvestmentProjection struct {
	Principal           decimal.Decimal `json:"principal"`
	AnnualRate          decimal.Decimal `json:"annualRate"`
	Months              int             `json:"months"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	TotalContributions  decimal.Decimal `json:"totalContributions"`
	FinalAmount         decimal.Decimal `json:"finalAmount"`
	InterestEarned      decimal.Decimal `json:"interestEarned"`
	EffectiveReturn     decimal.Decimal `json:"effectiveReturn"`
}

// PlannerResults collects every scenario outcome from a planner run plus the
// opportunity-cost projections for unspent paydown capacity, keyed by
// scenario name.
type PlannerResults struct {
	Scenarios   []ScenarioResult                  `json:"scenarios"`
	Investments map[string][]InvestmentProjection `json:"investments,omitempty"`
	MaxPaydown  decimal.Decimal                   `json:"maxPaydown"`
}
