package calculation

import (
	"fmt"
	"time"

	"github.com/MCDAngelo/mortgage-renewal-calc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTermMonths is the standard five-year commitment window applied when
// terms omit one.
const DefaultTermMonths = 60

// payoffEpsilon is the residual balance treated as fully paid. Rounding each
// component to the cent can leave a sub-cent tail.
var payoffEpsilon = decimal.NewFromFloat(0.01)

// Mortgage is a single mortgage instance: immutable terms plus the payment
// plan derived from them at construction. Schedule generation also captures
// the balance at the end of the term and the payoff month, the handoff values
// for renewal analysis.
type Mortgage struct {
	Terms          domain.MortgageTerms
	MonthlyPayment decimal.Decimal
	MonthlyRate    decimal.Decimal

	// Extra principal applied during schedule generation. ExtraMonthly is
	// added to every scheduled payment; ExtraAnnual is amortized across the
	// year at 1/12 per period.
	ExtraMonthly decimal.Decimal
	ExtraAnnual  decimal.Decimal

	// Populated by AmortizationSchedule.
	BalanceAtRenewal decimal.Decimal
	PayoffMonths     int

	logger Logger
}

// NewMortgage validates terms and derives the payment plan. The plan is fixed
// for the life of the mortgage; a change of terms means a new instance.
func NewMortgage(terms domain.MortgageTerms) (*Mortgage, error) {
	if terms.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("principal must be positive, got %s", terms.Principal)
	}
	if terms.AnnualRate.IsNegative() {
		return nil, fmt.Errorf("annual rate cannot be negative, got %s", terms.AnnualRate)
	}
	if terms.AmortizationMonths <= 0 {
		return nil, fmt.Errorf("amortization months must be positive, got %d", terms.AmortizationMonths)
	}
	if terms.TermMonths == 0 {
		terms.TermMonths = DefaultTermMonths
	}
	if terms.TermMonths < 0 || terms.TermMonths > terms.AmortizationMonths {
		return nil, fmt.Errorf("term months must be between 1 and amortization (%d), got %d", terms.AmortizationMonths, terms.TermMonths)
	}
	if terms.PaymentGap != nil && terms.PaymentGap.End.Before(terms.PaymentGap.Start) {
		return nil, fmt.Errorf("payment gap end %s precedes start %s",
			terms.PaymentGap.End.Format("2006-01-02"), terms.PaymentGap.Start.Format("2006-01-02"))
	}

	return &Mortgage{
		Terms:          terms,
		MonthlyPayment: MonthlyPayment(terms.Principal, terms.AnnualRate, terms.AmortizationMonths),
		MonthlyRate:    EffectiveMonthlyRate(terms.AnnualRate),
		logger:         NopLogger{},
	}, nil
}

// SetLogger injects a diagnostics logger. A nil logger restores the no-op
// default.
func (m *Mortgage) SetLogger(logger Logger) {
	if logger == nil {
		m.logger = NopLogger{}
		return
	}
	m.logger = logger
}

// AmortizationSchedule builds the complete payment-by-payment schedule. Each
// call rebuilds from scratch and re-captures BalanceAtRenewal and
// PayoffMonths; no state carries over between calls.
//
// Gap periods suppress the scheduled payment while interest still accrues:
// the principal portion goes negative by the interest amount, so the
// shortfall compounds into the balance.
func (m *Mortgage) AmortizationSchedule() []domain.ScheduleEntry {
	m.BalanceAtRenewal = decimal.Zero
	m.PayoffMonths = 0

	balance := m.Terms.Principal
	scheduledPayment := m.MonthlyPayment.Add(m.ExtraMonthly)
	extraAnnualPerMonth := m.ExtraAnnual.Div(decimal.NewFromInt(12)).Round(2)
	cumulativeInterest := decimal.Zero
	cumulativePrincipal := decimal.Zero
	currentDate := nextPaymentDate(m.Terms.StartDate)

	m.logger.Debugf("schedule start: principal=%s rate=%s payment=%s amortization=%dmo",
		m.Terms.Principal, m.Terms.AnnualRate, m.MonthlyPayment, m.Terms.AmortizationMonths)

	entries := make([]domain.ScheduleEntry, 0, m.Terms.AmortizationMonths)
	for paymentNum := 1; paymentNum <= m.Terms.AmortizationMonths; paymentNum++ {
		if balance.LessThanOrEqual(payoffEpsilon) {
			break
		}

		activePayment := scheduledPayment
		if m.Terms.PaymentGap != nil && m.Terms.PaymentGap.Contains(currentDate) {
			activePayment = decimal.Zero
			m.logger.Debugf("payment %d (%s): in gap window, payment suppressed",
				paymentNum, currentDate.Format("2006-01-02"))
		}

		interest := balance.Mul(m.MonthlyRate).Round(2)
		// Capped so the final period never pays more than the balance.
		principal := decimal.Min(activePayment.Sub(interest), balance).Round(2)
		actualPayment := interest.Add(principal)
		reduction := principal.Add(extraAnnualPerMonth).Round(2)
		balance = balance.Sub(reduction)

		cumulativeInterest = cumulativeInterest.Add(interest)
		cumulativePrincipal = cumulativePrincipal.Add(reduction)

		entries = append(entries, domain.ScheduleEntry{
			PaymentNumber:       paymentNum,
			Date:                currentDate,
			BeginningBalance:    balance.Add(reduction).Round(2),
			Payment:             actualPayment.Round(2),
			PrincipalPortion:    principal,
			ExtraAnnualPortion:  extraAnnualPerMonth,
			InterestPortion:     interest,
			EndingBalance:       balance.Round(2),
			CumulativePrincipal: cumulativePrincipal.Round(2),
			CumulativeInterest:  cumulativeInterest.Round(2),
			Year:                currentDate.Year(),
			Month:               int(currentDate.Month()),
		})

		if paymentNum == m.Terms.TermMonths {
			m.BalanceAtRenewal = balance
		}

		currentDate = nextPaymentDate(currentDate)

		if balance.LessThanOrEqual(payoffEpsilon) {
			m.PayoffMonths = paymentNum
			m.logger.Debugf("paid off after %d payments", paymentNum)
			break
		}
	}

	return entries
}

// SummarizeTerm aggregates interest and principal over the committed term the
// way bank renewal statements present it.
func (m *Mortgage) SummarizeTerm(entries []domain.ScheduleEntry) domain.TermSummary {
	n := m.Terms.TermMonths
	if n > len(entries) {
		n = len(entries)
	}

	interest := decimal.Zero
	principal := decimal.Zero
	for _, entry := range entries[:n] {
		interest = interest.Add(entry.InterestPortion)
		principal = principal.Add(entry.PrincipalPortion)
	}
	totalPaid := interest.Add(principal)

	interestShare := decimal.Zero
	if totalPaid.IsPositive() {
		interestShare = interest.Div(totalPaid).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return domain.TermSummary{
		PaymentsInTerm:   n,
		TermInterest:     interest.Round(2),
		TermPrincipal:    principal.Round(2),
		TotalPaid:        totalPaid.Round(2),
		InterestShare:    interestShare,
		PaymentsToPayoff: len(entries),
	}
}

// nextPaymentDate advances one calendar month preserving the day-of-month,
// with December rolling over into January of the next year.
func nextPaymentDate(date time.Time) time.Time {
	if date.Month() == time.December {
		return time.Date(date.Year()+1, time.January, date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month()+1, date.Day(), 0, 0, 0, 0, date.Location())
}
