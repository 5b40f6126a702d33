package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
	"github.com/api-sage/retail-banking-simulator/internal/domain"
	"github.com/api-sage/retail-banking-simulator/internal/logger"
)

type TransferService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewTransferService(accountRepo repo_interfaces.AccountRepository) *TransferService {
	return &TransferService{accountRepo: accountRepo}
}

// TransferFunds moves an amount between two accounts of the ledger. Both
// accounts are resolved and validated before any balance changes, so a
// failed transfer never leaves a half-applied state.
func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromNumber := strings.TrimSpace(req.FromAccountNumber)
	toNumber := strings.TrimSpace(req.ToAccountNumber)

	fromAccount, err := s.accountRepo.GetByAccountNumber(ctx, fromNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), err
		}
		logger.Error("transfer service source account lookup failed", err, logger.Fields{
			"accountNumber": fromNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	toAccount, err := s.accountRepo.GetByAccountNumber(ctx, toNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		logger.Error("transfer service destination account lookup failed", err, logger.Fields{
			"accountNumber": toNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err := fromAccount.Transfer(toAccount, amount); err != nil {
		logger.Error("transfer service transfer funds rejected", err, logger.Fields{
			"fromAccountNumber": fromAccount.Number,
			"toAccountNumber":   toAccount.Number,
		})
		return commons.ErrorResponse[models.TransferResponse]("transfer rejected", err.Error()), err
	}

	response := models.TransferResponse{
		FromAccountNumber: fromAccount.Number,
		ToAccountNumber:   toAccount.Number,
		Amount:            amount.StringFixed(2),
		FromBalance:       fromAccount.Balance.StringFixed(2),
		ToBalance:         toAccount.Balance.StringFixed(2),
	}

	logger.Info("transfer service transfer funds success", logger.Fields{
		"fromAccountNumber": response.FromAccountNumber,
		"toAccountNumber":   response.ToAccountNumber,
		"amount":            response.Amount,
	})

	return commons.SuccessResponse("transfer successful", response), nil
}
