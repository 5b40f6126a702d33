package models

import (
	"errors"
	"strings"
)

type TransferRequest struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	from := strings.TrimSpace(r.FromAccountNumber)
	to := strings.TrimSpace(r.ToAccountNumber)

	if from == "" {
		errs = append(errs, "source account number is required")
	}
	if to == "" {
		errs = append(errs, "destination account number is required")
	}
	if from != "" && from == to {
		errs = append(errs, "source and destination accounts cannot be the same")
	}
	errs = appendAmountErrors(errs, r.Amount)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferResponse struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
	FromBalance       string `json:"fromBalance"`
	ToBalance         string `json:"toBalance"`
}
