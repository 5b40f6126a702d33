package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
	"github.com/api-sage/retail-banking-simulator/internal/domain"
	"github.com/api-sage/retail-banking-simulator/internal/logger"
)

type AccountService struct {
	accountRepo           repo_interfaces.AccountRepository
	defaultInterestRate   decimal.Decimal
	defaultOverdraftLimit decimal.Decimal
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	defaultInterestRate decimal.Decimal,
	defaultOverdraftLimit decimal.Decimal,
) *AccountService {
	return &AccountService{
		accountRepo:           accountRepo,
		defaultInterestRate:   defaultInterestRate,
		defaultOverdraftLimit: defaultOverdraftLimit,
	}
}

func (s *AccountService) OpenSavingsAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open savings account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	return s.openAccount(ctx, req, domain.AccountKindSavings)
}

func (s *AccountService) OpenCheckingAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("account service open checking account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	return s.openAccount(ctx, req, domain.AccountKindChecking)
}

func (s *AccountService) openAccount(ctx context.Context, req models.OpenAccountRequest, kind domain.AccountKind) (commons.Response[models.OpenAccountResponse], error) {
	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	accountNumber, err := s.accountRepo.NextAccountNumber(ctx)
	if err != nil {
		logger.Error("account service open account number issuance failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	holderName := strings.TrimSpace(req.HolderName)
	var account *domain.Account
	switch kind {
	case domain.AccountKindSavings:
		account = domain.NewSavingsAccount(accountNumber, holderName, s.defaultInterestRate)
	default:
		account = domain.NewCheckingAccount(accountNumber, holderName, s.defaultOverdraftLimit)
	}

	if raw := strings.TrimSpace(req.InitialDeposit); raw != "" {
		amount, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			logger.Error("account service open account parse initial deposit failed", parseErr, nil)
			return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", "initial deposit must be numeric"), parseErr
		}
		if amount.GreaterThan(decimal.Zero) {
			if depErr := account.Deposit(amount); depErr != nil {
				logger.Error("account service open account initial deposit failed", depErr, logger.Fields{
					"accountNumber": accountNumber,
				})
				return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", depErr.Error()), depErr
			}
		}
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	response := models.OpenAccountResponse{
		AccountNumber: created.Number,
		HolderName:    created.HolderName,
		Kind:          string(created.Kind),
		Balance:       created.Balance.StringFixed(2),
		CreatedAt:     created.CreatedAt,
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"kind":          response.Kind,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountView], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.loadAccount(ctx, accountNumber)
	if err != nil {
		return accountLookupFailure[models.AccountView](err)
	}

	return commons.SuccessResponse("account fetched successfully", accountView(account)), nil
}

func (s *AccountService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.AccountView], error) {
	logger.Info("account service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.AccountView]("validation failed", err.Error()), err
	}

	account, err := s.loadAccount(ctx, req.AccountNumber)
	if err != nil {
		return accountLookupFailure[models.AccountView](err)
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err := account.Deposit(amount); err != nil {
		logger.Error("account service deposit funds rejected", err, logger.Fields{
			"accountNumber": account.Number,
		})
		return commons.ErrorResponse[models.AccountView]("deposit rejected", err.Error()), err
	}

	logger.Info("account service deposit funds success", logger.Fields{
		"accountNumber": account.Number,
		"balance":       account.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("deposit successful", accountView(account)), nil
}

func (s *AccountService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.AccountView], error) {
	logger.Info("account service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.AccountView]("validation failed", err.Error()), err
	}

	account, err := s.loadAccount(ctx, req.AccountNumber)
	if err != nil {
		return accountLookupFailure[models.AccountView](err)
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err := account.Withdraw(amount); err != nil {
		logger.Error("account service withdraw funds rejected", err, logger.Fields{
			"accountNumber": account.Number,
		})
		return commons.ErrorResponse[models.AccountView]("withdrawal rejected", err.Error()), err
	}

	logger.Info("account service withdraw funds success", logger.Fields{
		"accountNumber": account.Number,
		"balance":       account.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("withdrawal successful", accountView(account)), nil
}

func (s *AccountService) ApplyInterest(ctx context.Context, accountNumber string) (commons.Response[models.InterestResponse], error) {
	logger.Info("account service apply interest request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.loadAccount(ctx, accountNumber)
	if err != nil {
		return accountLookupFailure[models.InterestResponse](err)
	}

	interest, err := account.ApplyInterest()
	if err != nil {
		logger.Error("account service apply interest rejected", err, logger.Fields{
			"accountNumber": account.Number,
			"kind":          string(account.Kind),
		})
		return commons.ErrorResponse[models.InterestResponse]("interest rejected", err.Error()), err
	}

	response := models.InterestResponse{
		AccountNumber: account.Number,
		Interest:      interest.StringFixed(2),
		Balance:       account.Balance.StringFixed(2),
	}

	logger.Info("account service apply interest success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"interest":      response.Interest,
	})

	return commons.SuccessResponse("interest applied successfully", response), nil
}

func (s *AccountService) CloseAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountView], error) {
	logger.Info("account service close account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.loadAccount(ctx, accountNumber)
	if err != nil {
		return accountLookupFailure[models.AccountView](err)
	}

	if err := account.Close(); err != nil {
		logger.Error("account service close account rejected", err, logger.Fields{
			"accountNumber": account.Number,
		})
		return commons.ErrorResponse[models.AccountView]("close rejected", err.Error()), err
	}

	logger.Info("account service close account success", logger.Fields{
		"accountNumber": account.Number,
	})

	return commons.SuccessResponse("account closed successfully", accountView(account)), nil
}

// ListAccounts returns the active accounts in account-number order.
// Closed accounts stay findable by number but drop out of the listing.
func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountView], error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountView]("failed to list accounts", "Unable to list accounts right now"), err
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		if account.Status != domain.AccountStatusActive {
			continue
		}
		views = append(views, accountView(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", views), nil
}

func (s *AccountService) GetTransactionHistory(ctx context.Context, accountNumber string) (commons.Response[[]models.TransactionView], error) {
	logger.Info("account service transaction history request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.loadAccount(ctx, accountNumber)
	if err != nil {
		return accountLookupFailure[[]models.TransactionView](err)
	}

	views := make([]models.TransactionView, 0, len(account.Transactions))
	for _, txn := range account.Transactions {
		views = append(views, models.TransactionView{
			ID:          txn.ID,
			Kind:        string(txn.Kind),
			Amount:      txn.Amount.StringFixed(2),
			Timestamp:   txn.Timestamp,
			Description: txn.Description,
		})
	}

	return commons.SuccessResponse("transaction history fetched successfully", views), nil
}

func (s *AccountService) loadAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, fmt.Errorf("account number is required")
	}

	return s.accountRepo.GetByAccountNumber(ctx, accountNumber)
}

func accountLookupFailure[T any](err error) (commons.Response[T], error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return commons.ErrorResponse[T]("Account not found"), err
	}

	logger.Error("account service account lookup failed", err, nil)
	return commons.ErrorResponse[T]("validation failed", err.Error()), err
}

func accountView(account *domain.Account) models.AccountView {
	view := models.AccountView{
		AccountNumber: account.Number,
		HolderName:    account.HolderName,
		Kind:          string(account.Kind),
		Balance:       account.Balance.StringFixed(2),
		Status:        string(account.Status),
		CreatedAt:     account.CreatedAt,
	}

	switch account.Kind {
	case domain.AccountKindSavings:
		view.InterestRate = account.InterestRatePercent.String() + "%"
	case domain.AccountKindChecking:
		view.OverdraftLimit = account.OverdraftLimit.StringFixed(2)
	}

	return view
}
