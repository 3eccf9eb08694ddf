package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfigYAML = `
mortgage:
  principal: 500000
  annual_rate: 0.05
  amortization_months: 300
  term_months: 60
  start_date: 2024-01-15

renewal:
  max_paydown: 100000
  scenarios:
    - name: "stay the course"
      rate: 0.05
    - name: "variable with paydown"
      rate: 0.045
      rate_type: variable
      paydown: 50000
      extra_monthly: 200
`

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	assert.True(t, cfg.Mortgage.Principal.Equal(decimal.NewFromInt(500000)))
	assert.True(t, cfg.Mortgage.AnnualRate.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 300, cfg.Mortgage.AmortizationMonths)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), cfg.Mortgage.StartDate)

	require.Len(t, cfg.Renewal.Scenarios, 2)
	second := cfg.Renewal.Scenarios[1]
	assert.Equal(t, domain.RateTypeVariable, second.RateType)
	require.NotNil(t, second.Rate)
	assert.True(t, second.Rate.Equal(decimal.NewFromFloat(0.045)))
	assert.True(t, second.Paydown.Equal(decimal.NewFromInt(50000)))
	assert.True(t, second.ExtraMonthly.Equal(decimal.NewFromInt(200)))
}

func TestLoadFromFile_NotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeConfigFile(t, "mortgage: [unclosed"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration_Defaults(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)
	cfg := &Config{
		Mortgage: domain.MortgageTerms{
			Principal:          decimal.NewFromInt(400000),
			AnnualRate:         decimal.NewFromFloat(0.04),
			AmortizationMonths: 300,
			StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Renewal: RenewalConfig{
			Scenarios: []domain.ScenarioConfig{{Rate: &rate}},
		},
	}

	require.NoError(t, NewInputParser().ValidateConfiguration(cfg))

	assert.Equal(t, 60, cfg.Mortgage.TermMonths, "Term should default to five years")
	assert.Equal(t, "scenario-1", cfg.Renewal.Scenarios[0].Name, "Unnamed scenarios get positional names")
	assert.Equal(t, domain.RateTypeFixed, cfg.Renewal.Scenarios[0].RateType, "Rate type should default to fixed")
}

func TestValidateConfiguration_Errors(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)
	valid := func() *Config {
		r := rate
		return &Config{
			Mortgage: domain.MortgageTerms{
				Principal:          decimal.NewFromInt(400000),
				AnnualRate:         decimal.NewFromFloat(0.04),
				AmortizationMonths: 300,
				StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Renewal: RenewalConfig{
				Scenarios: []domain.ScenarioConfig{{Rate: &r}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero principal", func(c *Config) { c.Mortgage.Principal = decimal.Zero }, "principal must be positive"},
		{"negative rate", func(c *Config) { c.Mortgage.AnnualRate = decimal.NewFromFloat(-0.01) }, "annual rate cannot be negative"},
		{"missing start date", func(c *Config) { c.Mortgage.StartDate = time.Time{} }, "start date is required"},
		{"term exceeds amortization", func(c *Config) { c.Mortgage.TermMonths = 301 }, "term months"},
		{"no scenarios", func(c *Config) { c.Renewal.Scenarios = nil }, "no renewal scenarios"},
		{"negative max paydown", func(c *Config) { c.Renewal.MaxPaydown = decimal.NewFromInt(-1) }, "max paydown cannot be negative"},
		{"scenario missing rate", func(c *Config) { c.Renewal.Scenarios[0].Rate = nil }, "rate is required"},
		{"bad rate type", func(c *Config) { c.Renewal.Scenarios[0].RateType = "floating" }, "rate type"},
		{"negative paydown", func(c *Config) { c.Renewal.Scenarios[0].Paydown = decimal.NewFromInt(-5) }, "paydown cannot be negative"},
		{"gap missing end", func(c *Config) {
			c.Mortgage.PaymentGap = &domain.PaymentGap{Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
		}, "payment gap requires both"},
		{"empty grid", func(c *Config) { c.Renewal.Grid = &ScenarioGrid{} }, "at least one fixed or variable rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := NewInputParser().ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenarioGrid_Expand(t *testing.T) {
	grid := &ScenarioGrid{
		FixedRates:          []decimal.Decimal{decimal.NewFromFloat(0.045), decimal.NewFromFloat(0.05)},
		VariableRates:       []decimal.Decimal{decimal.NewFromFloat(0.04)},
		Paydowns:            []decimal.Decimal{decimal.Zero, decimal.NewFromInt(100000)},
		ExtraAnnualPercents: []decimal.Decimal{decimal.Zero, decimal.NewFromInt(5)},
		TermYears:           5,
	}

	scenarios := grid.Expand(decimal.NewFromInt(500000))

	// 3 rates x 2 paydowns x 1 monthly x 2 annual percentages.
	require.Len(t, scenarios, 12)

	names := make(map[string]bool, len(scenarios))
	variableCount := 0
	for _, sc := range scenarios {
		require.NotNil(t, sc.Rate)
		assert.False(t, names[sc.Name], "Scenario names should be unique: %s", sc.Name)
		names[sc.Name] = true
		assert.Equal(t, 5, sc.TermYears)
		if sc.RateType == domain.RateTypeVariable {
			variableCount++
			assert.Contains(t, sc.Name, "(variable)")
		}
	}
	assert.Equal(t, 4, variableCount, "One variable rate across four parameter combinations")

	first := scenarios[0]
	assert.Equal(t, "4.50% + $0k down + $0 monthly + 0.0% yearly", first.Name)
	assert.True(t, first.ExtraAnnual.IsZero())

	// 5% of the original $500k principal.
	var withAnnual *domain.ScenarioConfig
	for i := range scenarios {
		if scenarios[i].Name == "4.50% + $100k down + $0 monthly + 5.0% yearly" {
			withAnnual = &scenarios[i]
			break
		}
	}
	require.NotNil(t, withAnnual, "Expected grid combination missing")
	assert.True(t, withAnnual.ExtraAnnual.Equal(decimal.NewFromInt(25000)),
		"Extra annual should be a percentage of the original principal, got %s", withAnnual.ExtraAnnual)
	assert.True(t, withAnnual.Paydown.Equal(decimal.NewFromInt(100000)))
}

func TestScenarioConfigs_CombinesExplicitAndGrid(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)
	cfg := &Config{
		Mortgage: domain.MortgageTerms{Principal: decimal.NewFromInt(500000)},
		Renewal: RenewalConfig{
			Scenarios: []domain.ScenarioConfig{{Name: "explicit", Rate: &rate}},
			Grid: &ScenarioGrid{
				FixedRates: []decimal.Decimal{decimal.NewFromFloat(0.045)},
			},
		},
	}

	scenarios := cfg.ScenarioConfigs()
	require.Len(t, scenarios, 2)
	assert.Equal(t, "explicit", scenarios[0].Name)
	assert.Equal(t, domain.RateTypeFixed, scenarios[1].RateType)
}

func TestLoadFromFile_Grid(t *testing.T) {
	content := `
mortgage:
  principal: 500000
  annual_rate: 0.05
  amortization_months: 300
  start_date: 2024-01-15

renewal:
  max_paydown: 150000
  grid:
    fixed_rates: [0.045, 0.05]
    variable_rates: [0.04]
    paydowns: [0, 100000]
    term_years: 5
`
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeConfigFile(t, content))
	require.NoError(t, err)

	require.NotNil(t, cfg.Renewal.Grid)
	scenarios := cfg.ScenarioConfigs()
	assert.Len(t, scenarios, 6, "Three rates across two paydowns")
}
