package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	HolderName     string `json:"holderName"`
	InitialDeposit string `json:"initialDeposit,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holder name is required")
	}

	if raw := strings.TrimSpace(r.InitialDeposit); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, "initial deposit must be numeric")
		} else if amount.IsNegative() {
			errs = append(errs, "initial deposit cannot be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OpenAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	Kind          string `json:"kind"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}
