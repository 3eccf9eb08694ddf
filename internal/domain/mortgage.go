package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MortgageTerms are the immutable inputs describing a single Canadian
// mortgage. Rates are nominal annual rates quoted with semi-annual
// compounding, expressed as decimals (0.05 for 5%).
type MortgageTerms struct {
	Principal          decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRate         decimal.Decimal `yaml:"annual_rate" json:"annualRate"`
	AmortizationMonths int             `yaml:"amortization_months" json:"amortizationMonths"`
	TermMonths         int             `yaml:"term_months" json:"termMonths"`
	StartDate          time.Time       `yaml:"start_date" json:"startDate"`
	PaymentGap         *PaymentGap     `yaml:"payment_gap" json:"paymentGap,omitempty"`
}

// PaymentGap is a window during which the scheduled payment is suppressed.
// Interest still accrues for gap periods and the shortfall compounds into the
// balance.
type PaymentGap struct {
	Start time.Time `yaml:"start" json:"start"`
	End   time.Time `yaml:"end" json:"end"`
}

// Contains reports whether date falls within the gap window. Both ends are
// inclusive; changing this shifts payoff timing by up to one period.
func (g *PaymentGap) Contains(date time.Time) bool {
	return !date.Before(g.Start) && !date.After(g.End)
}

// ScheduleEntry is one row of an amortization schedule. Entries are ordered
// by PaymentNumber ascending, starting at 1.
type ScheduleEntry struct {
	PaymentNumber       int             `json:"paymentNumber"`
	Date                time.Time       `json:"date"`
	BeginningBalance    decimal.Decimal `json:"beginningBalance"`
	Payment             decimal.Decimal `json:"payment"`
	PrincipalPortion    decimal.Decimal `json:"principalPortion"`
	ExtraAnnualPortion  decimal.Decimal `json:"extraAnnualPortion"`
	InterestPortion     decimal.Decimal `json:"interestPortion"`
	EndingBalance       decimal.Decimal `json:"endingBalance"`
	CumulativePrincipal decimal.Decimal `json:"cumulativePrincipal"`
	CumulativeInterest  decimal.Decimal `json:"cumulativeInterest"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
}

// AnnualSummary rolls a schedule up into one calendar year of totals.
type AnnualSummary struct {
	Year           int             `json:"year"`
	PrincipalPaid  decimal.Decimal `json:"principalPaid"`
	InterestPaid   decimal.Decimal `json:"interestPaid"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PrincipalShare decimal.Decimal `json:"principalShare"` // percent of TotalPaid
	InterestShare  decimal.Decimal `json:"interestShare"`  // percent of TotalPaid
	YearEndBalance decimal.Decimal `json:"yearEndBalance"`
}

// TermSummary aggregates the cost of the committed term the way bank renewal
// statements present it.
type TermSummary struct {
	PaymentsInTerm   int             `json:"paymentsInTerm"`
	TermInterest     decimal.Decimal `json:"termInterest"`
	TermPrincipal    decimal.Decimal `json:"termPrincipal"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	InterestShare    decimal.Decimal `json:"interestShare"` // percent of TotalPaid
	PaymentsToPayoff int             `json:"paymentsToPayoff"`
}
