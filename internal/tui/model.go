// Package tui is an interactive browser for renewal scenario results: a
// scenario list pane with a detail pane for the selected scenario.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/calculation"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/config"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/MCDAngelo/mortgage-renewal-calc/internal/renewal"
)

// Model holds the application state.
type Model struct {
	configPath string

	results *domain.PlannerResults
	term    domain.TermSummary

	selectedIndex int
	width         int
	height        int

	loading bool
	err     error
}

// ResultsMsg carries the completed analysis into the model.
type ResultsMsg struct {
	Results *domain.PlannerResults
	Term    domain.TermSummary
}

// ErrorMsg carries a load or calculation failure.
type ErrorMsg struct {
	Err error
}

// NewModel creates the application model for a configuration file path.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init kicks off loading and analysis (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return analyzeCmd(m.configPath)
}

// analyzeCmd loads the configuration, simulates the current mortgage, and
// runs the renewal planner.
func analyzeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		mortgage, err := calculation.NewMortgage(cfg.Mortgage)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		schedule := mortgage.AmortizationSchedule()

		planner := renewal.NewPlanner(mortgage)
		results, err := planner.Analyze(cfg.ScenarioConfigs(), cfg.Renewal.MaxPaydown)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return ResultsMsg{
			Results: results,
			Term:    mortgage.SummarizeTerm(schedule),
		}
	}
}
