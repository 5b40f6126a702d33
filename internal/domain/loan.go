package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/clock"
)

type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "ACTIVE"
	LoanStatusPaidOff LoanStatus = "PAID_OFF"
)

// Loan is a fixed-payment amortized loan. The monthly payment is derived
// once at open and never recomputed; afterwards only the remaining
// balance and status change, and the status moves ACTIVE -> PAID_OFF
// exactly once.
type Loan struct {
	ID                string
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermMonths        int
	MonthlyPayment    decimal.Decimal
	RemainingBalance  decimal.Decimal
	Status            LoanStatus
	StartDate         string
}

// OpenLoan computes the fixed monthly payment with the standard
// amortization formula P*r*(1+r)^n / ((1+r)^n - 1), where r is the
// monthly rate. A zero annual rate degenerates to straight-line
// principal/term, which the formula itself cannot express.
func OpenLoan(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) (*Loan, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if annualRatePercent.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if termMonths <= 0 {
		return nil, ErrInvalidLoanTerm
	}

	term := decimal.NewFromInt(int64(termMonths))
	one := decimal.NewFromInt(1)

	var payment decimal.Decimal
	if annualRatePercent.IsZero() {
		payment = principal.Div(term)
	} else {
		monthlyRate := annualRatePercent.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
		factor := one.Add(monthlyRate).Pow(term)
		payment = principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one))
	}

	return &Loan{
		ID:                "LOAN-" + uuid.NewString(),
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
		MonthlyPayment:    payment.Round(2),
		RemainingBalance:  principal,
		Status:            LoanStatusActive,
		StartDate:         clock.Timestamp(),
	}, nil
}

// ApplyPayment reduces the remaining balance by amount. Payments below
// the fixed monthly payment are rejected without mutation. A payment may
// overshoot the remaining balance (the last payment may exceed what is
// owed), in which case the balance clamps at zero and the loan is
// marked paid off.
func (l *Loan) ApplyPayment(amount decimal.Decimal) error {
	if l.Status != LoanStatusActive {
		return ErrLoanAlreadyPaidOff
	}
	if amount.LessThan(l.MonthlyPayment) {
		return ErrPaymentBelowMinimum
	}

	l.RemainingBalance = l.RemainingBalance.Sub(amount)
	if l.RemainingBalance.LessThanOrEqual(decimal.Zero) {
		l.RemainingBalance = decimal.Zero
		l.Status = LoanStatusPaidOff
	}

	return nil
}
