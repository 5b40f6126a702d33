package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
)

type AccountService interface {
	OpenSavingsAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	OpenCheckingAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountView], error)
	DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.AccountView], error)
	WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.AccountView], error)
	ApplyInterest(ctx context.Context, accountNumber string) (commons.Response[models.InterestResponse], error)
	CloseAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountView], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountView], error)
	GetTransactionHistory(ctx context.Context, accountNumber string) (commons.Response[[]models.TransactionView], error)
}
