package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type ApplyLoanRequest struct {
	AccountNumber     string `json:"accountNumber"`
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annualRatePercent"`
	TermMonths        string `json:"termMonths"`
}

func (r ApplyLoanRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "account number is required")
	}

	principal := strings.TrimSpace(r.Principal)
	if principal == "" {
		errs = append(errs, "loan amount is required")
	} else if value, err := decimal.NewFromString(principal); err != nil {
		errs = append(errs, "loan amount must be numeric")
	} else if value.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "loan amount must be greater than zero")
	}

	rate := strings.TrimSpace(r.AnnualRatePercent)
	if rate == "" {
		errs = append(errs, "interest rate is required")
	} else if value, err := decimal.NewFromString(rate); err != nil {
		errs = append(errs, "interest rate must be numeric")
	} else if value.IsNegative() {
		errs = append(errs, "interest rate cannot be negative")
	}

	term := strings.TrimSpace(r.TermMonths)
	if term == "" {
		errs = append(errs, "term is required")
	} else if months, err := strconv.Atoi(term); err != nil {
		errs = append(errs, "term must be a whole number of months")
	} else if months <= 0 {
		errs = append(errs, "term must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type PayLoanRequest struct {
	AccountNumber string `json:"accountNumber"`
	// LoanNumber is 1-based, matching the numbering the loan listing
	// shows the operator.
	LoanNumber string `json:"loanNumber"`
	Amount     string `json:"amount"`
}

func (r PayLoanRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "account number is required")
	}

	loanNumber := strings.TrimSpace(r.LoanNumber)
	if loanNumber == "" {
		errs = append(errs, "loan number is required")
	} else if n, err := strconv.Atoi(loanNumber); err != nil {
		errs = append(errs, "loan number must be a whole number")
	} else if n <= 0 {
		errs = append(errs, "loan number must be greater than zero")
	}

	errs = appendAmountErrors(errs, r.Amount)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type LoanView struct {
	LoanNumber        int    `json:"loanNumber"`
	ID                string `json:"id"`
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annualRatePercent"`
	TermMonths        int    `json:"termMonths"`
	MonthlyPayment    string `json:"monthlyPayment"`
	RemainingBalance  string `json:"remainingBalance"`
	Status            string `json:"status"`
	StartDate         string `json:"startDate"`
}

type PayLoanResponse struct {
	AccountNumber    string `json:"accountNumber"`
	LoanNumber       int    `json:"loanNumber"`
	AmountPaid       string `json:"amountPaid"`
	RemainingBalance string `json:"remainingBalance"`
	LoanStatus       string `json:"loanStatus"`
	Balance          string `json:"balance"`
}
