package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
)

type LoanService interface {
	ApplyLoan(ctx context.Context, req models.ApplyLoanRequest) (commons.Response[models.LoanView], error)
	PayLoan(ctx context.Context, req models.PayLoanRequest) (commons.Response[models.PayLoanResponse], error)
	ListLoans(ctx context.Context, accountNumber string) (commons.Response[[]models.LoanView], error)
}
