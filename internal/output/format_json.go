package output

import (
	"encoding/json"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
)

// JSONFormatter formats reports as indented JSON.
type JSONFormatter struct{}

// Name returns the format name.
func (jf *JSONFormatter) Name() string { return "json" }

// FormatSchedule marshals the full schedule report.
func (jf *JSONFormatter) FormatSchedule(report *ScheduleReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// FormatScenarios marshals the planner results.
func (jf *JSONFormatter) FormatScenarios(results *domain.PlannerResults) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
