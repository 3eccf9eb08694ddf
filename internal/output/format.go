// Package output renders schedules and planner results for the CLI. Three
// formats are supported: a console table, CSV, and JSON.
package output

import (
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleReport bundles everything the schedule command prints: the full
// schedule, its annual rollup and the term summary.
type ScheduleReport struct {
	Terms    domain.MortgageTerms   `json:"terms"`
	Payment  decimal.Decimal        `json:"monthlyPayment"`
	Schedule []domain.ScheduleEntry `json:"schedule"`
	Annual   []domain.AnnualSummary `json:"annual"`
	Term     domain.TermSummary     `json:"term"`
}

// Formatter renders reports in one output format.
type Formatter interface {
	Name() string
	FormatSchedule(report *ScheduleReport) ([]byte, error)
	FormatScenarios(results *domain.PlannerResults) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil when the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "":
		return &TableFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{}
	default:
		return nil
	}
}
