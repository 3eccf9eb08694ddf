package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// View renders the UI (required by tea.Model).
func (m Model) View() string {
	if m.loading {
		return titleStyle.Render("Mortgage Renewal Calculator") + "\n\n  Calculating scenarios..."
	}
	if m.err != nil {
		return titleStyle.Render("Mortgage Renewal Calculator") + "\n\n" +
			errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n" +
			helpStyle.Render("q: quit")
	}
	if m.results == nil || len(m.results.Scenarios) == 0 {
		return titleStyle.Render("Mortgage Renewal Calculator") + "\n\n  No scenarios configured.\n\n" +
			helpStyle.Render("q: quit")
	}

	list := m.renderScenarioList()
	detail := m.renderScenarioDetail(&m.results.Scenarios[m.selectedIndex])

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(list),
		paneStyle.Render(detail),
	)

	help := helpStyle.Render("↑/k up • ↓/j down • g/G first/last • q quit")

	return titleStyle.Render("Mortgage Renewal Calculator") + "\n" + body + "\n" + help
}

// renderScenarioList builds the left pane: one line per scenario with a
// cursor on the selection.
func (m Model) renderScenarioList() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scenarios (%d)\n\n", len(m.results.Scenarios)))

	for i := range m.results.Scenarios {
		sc := &m.results.Scenarios[i]
		line := fmt.Sprintf("%s  %s%%", truncateName(sc.Name, 40), sc.Rate.Mul(hundred).StringFixed(2))
		if i == m.selectedIndex {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + selectedStyle.Render("Current Term") + "\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", "Interest")) +
		"$" + m.term.TermInterest.StringFixed(2) + "\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", "Principal")) +
		"$" + m.term.TermPrincipal.StringFixed(2) + "\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", "Payments")) +
		fmt.Sprintf("%d", m.term.PaymentsInTerm) + "\n")

	return sb.String()
}

// renderScenarioDetail builds the right pane for the selected scenario.
func (m Model) renderScenarioDetail(sc *domain.ScenarioResult) string {
	var sb strings.Builder
	sb.WriteString(selectedStyle.Render(sc.Name) + "\n\n")

	writeField := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", label)) + value + "\n")
	}

	writeField("Rate", sc.Rate.Mul(hundred).StringFixed(2)+"% ("+string(sc.RateType)+")")
	writeField("Paydown", "$"+sc.Paydown.StringFixed(2))
	writeField("New Principal", "$"+sc.NewPrincipal.StringFixed(2))
	writeField("Amortization", fmt.Sprintf("%d months", sc.AmortizationMonths))
	writeField("Monthly Payment", "$"+sc.MonthlyPayment.StringFixed(2))
	if sc.ExtraMonthly.IsPositive() {
		writeField("Extra Monthly", "$"+sc.ExtraMonthly.StringFixed(2))
	}
	if sc.ExtraAnnual.IsPositive() {
		writeField("Extra Annual", "$"+sc.ExtraAnnual.StringFixed(2))
	}
	if sc.PayoffMonths > 0 {
		writeField("Paid Off After", fmt.Sprintf("%d months", sc.PayoffMonths))
	}

	sb.WriteString("\n")
	writeField("Term Interest", "$"+sc.TermInterest.StringFixed(2))
	writeField("Term Principal", "$"+sc.TermPrincipal.StringFixed(2))
	writeField("Balance at Renewal", "$"+sc.RemainingBalance.StringFixed(2))

	if sc.Risk != nil {
		sb.WriteString("\n" + selectedStyle.Render("Variable Rate Risk") + "\n")
		writeField("Payment Range", fmt.Sprintf("$%s to $%s",
			sc.Risk.PaymentLow.StringFixed(2), sc.Risk.PaymentHigh.StringFixed(2)))
		writeField("Interest Range", fmt.Sprintf("$%s to $%s",
			sc.Risk.InterestLow.StringFixed(2), sc.Risk.InterestHigh.StringFixed(2)))
		writeField("Risk Score", fmt.Sprintf("%d / 100", sc.Risk.RiskScore))
		writeField("Sensitivity", "$"+sc.Risk.RateSensitivity.StringFixed(2)+" per 0.25%")
		writeField("Break-Even Rate", sc.Risk.BreakEvenRate.Mul(hundred).StringFixed(2)+"%")
	}

	if projections, ok := m.results.Investments[sc.Name]; ok && len(projections) > 0 {
		sb.WriteString("\n" + selectedStyle.Render("Unspent Paydown Invested") + "\n")
		for i := range projections {
			p := &projections[i]
			writeField(
				p.AnnualRate.Mul(hundred).StringFixed(0)+"% return",
				fmt.Sprintf("$%s (+$%s)", p.FinalAmount.StringFixed(2), p.InterestEarned.StringFixed(2)),
			)
		}
	}

	return sb.String()
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
