package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DepositFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	return validateAccountAndAmount(r.AccountNumber, r.Amount)
}

type WithdrawFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r WithdrawFundsRequest) Validate() error {
	return validateAccountAndAmount(r.AccountNumber, r.Amount)
}

func validateAccountAndAmount(accountNumber string, amount string) error {
	var errs []string

	if strings.TrimSpace(accountNumber) == "" {
		errs = append(errs, "account number is required")
	}
	errs = appendAmountErrors(errs, amount)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func appendAmountErrors(errs []string, amount string) []string {
	raw := strings.TrimSpace(amount)
	if raw == "" {
		return append(errs, "amount is required")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return append(errs, "amount must be numeric")
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return append(errs, "amount must be greater than zero")
	}

	return errs
}

// AccountView is the rendered state of one account after an operation.
type AccountView struct {
	AccountNumber  string `json:"accountNumber"`
	HolderName     string `json:"holderName"`
	Kind           string `json:"kind"`
	Balance        string `json:"balance"`
	InterestRate   string `json:"interestRate,omitempty"`
	OverdraftLimit string `json:"overdraftLimit,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

type InterestResponse struct {
	AccountNumber string `json:"accountNumber"`
	Interest      string `json:"interest"`
	Balance       string `json:"balance"`
}

type TransactionView struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}
