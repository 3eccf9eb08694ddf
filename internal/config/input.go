// Package config loads and validates the calculator's YAML input: the
// current mortgage's terms plus the renewal scenarios to evaluate, either
// listed explicitly or enumerated from a parameter grid.
package config

import (
	"fmt"
	"os"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the top-level input file structure.
type Config struct {
	Mortgage domain.MortgageTerms `yaml:"mortgage"`
	Renewal  RenewalConfig        `yaml:"renewal"`
}

// RenewalConfig describes the renewal analysis: the capital available for a
// paydown, explicit scenarios, and an optional parameter grid that expands
// into one scenario per combination.
type RenewalConfig struct {
	MaxPaydown decimal.Decimal         `yaml:"max_paydown"`
	Scenarios  []domain.ScenarioConfig `yaml:"scenarios"`
	Grid       *ScenarioGrid           `yaml:"grid"`
}

// ScenarioGrid enumerates scenarios from the cross product of its parameter
// lists. Extra annual amounts are given as percentages of the original
// principal. Empty lists default to a single zero entry.
type ScenarioGrid struct {
	FixedRates          []decimal.Decimal `yaml:"fixed_rates"`
	VariableRates       []decimal.Decimal `yaml:"variable_rates"`
	Paydowns            []decimal.Decimal `yaml:"paydowns"`
	ExtraMonthly        []decimal.Decimal `yaml:"extra_monthly"`
	ExtraAnnualPercents []decimal.Decimal `yaml:"extra_annual_percents"`
	TermYears           int               `yaml:"term_years"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration and applies
// defaults. Scenario errors surface here, before any simulation runs.
func (ip *InputParser) ValidateConfiguration(config *Config) error {
	if err := ip.validateMortgage(&config.Mortgage); err != nil {
		return fmt.Errorf("mortgage validation failed: %w", err)
	}

	if len(config.Renewal.Scenarios) == 0 && config.Renewal.Grid == nil {
		return fmt.Errorf("no renewal scenarios provided")
	}
	if config.Renewal.MaxPaydown.IsNegative() {
		return fmt.Errorf("max paydown cannot be negative")
	}

	for i := range config.Renewal.Scenarios {
		if err := ip.validateScenario(i, &config.Renewal.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	if config.Renewal.Grid != nil {
		if err := ip.validateGrid(config.Renewal.Grid); err != nil {
			return fmt.Errorf("grid validation failed: %w", err)
		}
	}

	return nil
}

// validateMortgage validates the current mortgage's terms.
func (ip *InputParser) validateMortgage(terms *domain.MortgageTerms) error {
	if terms.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("principal must be positive")
	}
	if terms.AnnualRate.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if terms.AmortizationMonths <= 0 {
		return fmt.Errorf("amortization months must be positive")
	}
	if terms.TermMonths == 0 {
		terms.TermMonths = 60
	}
	if terms.TermMonths < 0 || terms.TermMonths > terms.AmortizationMonths {
		return fmt.Errorf("term months must be between 1 and amortization months (%d)", terms.AmortizationMonths)
	}
	if terms.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if terms.PaymentGap != nil {
		if terms.PaymentGap.Start.IsZero() || terms.PaymentGap.End.IsZero() {
			return fmt.Errorf("payment gap requires both start and end dates")
		}
		if terms.PaymentGap.End.Before(terms.PaymentGap.Start) {
			return fmt.Errorf("payment gap end precedes start")
		}
	}
	return nil
}

// validateScenario validates a single explicit scenario and applies defaults.
func (ip *InputParser) validateScenario(index int, scenario *domain.ScenarioConfig) error {
	if scenario.Name == "" {
		scenario.Name = fmt.Sprintf("scenario-%d", index+1)
	}
	if scenario.Rate == nil {
		return fmt.Errorf("rate is required")
	}
	if scenario.Rate.IsNegative() {
		return fmt.Errorf("rate cannot be negative")
	}
	switch scenario.RateType {
	case "":
		scenario.RateType = domain.RateTypeFixed
	case domain.RateTypeFixed, domain.RateTypeVariable:
	default:
		return fmt.Errorf("rate type must be %q or %q, got %q", domain.RateTypeFixed, domain.RateTypeVariable, scenario.RateType)
	}
	if scenario.Paydown.IsNegative() {
		return fmt.Errorf("paydown cannot be negative")
	}
	if scenario.TermYears < 0 {
		return fmt.Errorf("term years cannot be negative")
	}
	if scenario.AmortizationMonths < 0 {
		return fmt.Errorf("amortization months cannot be negative")
	}
	if scenario.ExtraMonthly.IsNegative() || scenario.ExtraAnnual.IsNegative() {
		return fmt.Errorf("extra payments cannot be negative")
	}
	return nil
}

// validateGrid validates the scenario parameter grid.
func (ip *InputParser) validateGrid(grid *ScenarioGrid) error {
	if len(grid.FixedRates) == 0 && len(grid.VariableRates) == 0 {
		return fmt.Errorf("grid requires at least one fixed or variable rate")
	}
	for _, rate := range append(append([]decimal.Decimal{}, grid.FixedRates...), grid.VariableRates...) {
		if rate.IsNegative() {
			return fmt.Errorf("grid rates cannot be negative")
		}
	}
	for _, paydown := range grid.Paydowns {
		if paydown.IsNegative() {
			return fmt.Errorf("grid paydowns cannot be negative")
		}
	}
	if grid.TermYears < 0 {
		return fmt.Errorf("grid term years cannot be negative")
	}
	return nil
}

// ScenarioConfigs returns the full scenario list: explicit scenarios followed
// by the grid expansion.
func (c *Config) ScenarioConfigs() []domain.ScenarioConfig {
	scenarios := append([]domain.ScenarioConfig{}, c.Renewal.Scenarios...)
	if c.Renewal.Grid != nil {
		scenarios = append(scenarios, c.Renewal.Grid.Expand(c.Mortgage.Principal)...)
	}
	return scenarios
}

// Expand enumerates one scenario per combination of rate, paydown, extra
// monthly payment and extra annual percentage. Names encode the combination,
// e.g. "4.50% + $100k down + $0 monthly + 5.0% yearly".
func (g *ScenarioGrid) Expand(originalPrincipal decimal.Decimal) []domain.ScenarioConfig {
	paydowns := g.Paydowns
	if len(paydowns) == 0 {
		paydowns = []decimal.Decimal{decimal.Zero}
	}
	extraMonthly := g.ExtraMonthly
	if len(extraMonthly) == 0 {
		extraMonthly = []decimal.Decimal{decimal.Zero}
	}
	extraAnnualPcts := g.ExtraAnnualPercents
	if len(extraAnnualPcts) == 0 {
		extraAnnualPcts = []decimal.Decimal{decimal.Zero}
	}

	hundred := decimal.NewFromInt(100)
	thousand := decimal.NewFromInt(1000)

	var scenarios []domain.ScenarioConfig
	add := func(rate decimal.Decimal, rateType domain.RateType) {
		for _, paydown := range paydowns {
			for _, monthly := range extraMonthly {
				for _, annualPct := range extraAnnualPcts {
					name := fmt.Sprintf("%s%% + $%sk down + $%s monthly + %s%% yearly",
						rate.Mul(hundred).StringFixed(2),
						paydown.Div(thousand).StringFixed(0),
						monthly.StringFixed(0),
						annualPct.StringFixed(1))
					if rateType == domain.RateTypeVariable {
						name += " (variable)"
					}
					r := rate
					scenarios = append(scenarios, domain.ScenarioConfig{
						Name:         name,
						Rate:         &r,
						RateType:     rateType,
						Paydown:      paydown,
						TermYears:    g.TermYears,
						ExtraMonthly: monthly,
						ExtraAnnual:  annualPct.Div(hundred).Mul(originalPrincipal).Round(2),
					})
				}
			}
		}
	}

	for _, rate := range g.FixedRates {
		add(rate, domain.RateTypeFixed)
	}
	for _, rate := range g.VariableRates {
		add(rate, domain.RateTypeVariable)
	}

	return scenarios
}
