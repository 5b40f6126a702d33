package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
	"github.com/api-sage/retail-banking-simulator/internal/domain"
	"github.com/api-sage/retail-banking-simulator/internal/logger"
)

type LoanService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewLoanService(accountRepo repo_interfaces.AccountRepository) *LoanService {
	return &LoanService{accountRepo: accountRepo}
}

// ApplyLoan opens an amortized loan against the account and credits the
// principal. Any positive principal/rate/term is approved; there is no
// credit check.
func (s *LoanService) ApplyLoan(ctx context.Context, req models.ApplyLoanRequest) (commons.Response[models.LoanView], error) {
	logger.Info("loan service apply loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("loan service apply loan validation failed", err, nil)
		return commons.ErrorResponse[models.LoanView]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(req.AccountNumber))
	if err != nil {
		return accountLookupFailure[models.LoanView](err)
	}

	principal, _ := decimal.NewFromString(strings.TrimSpace(req.Principal))
	rate, _ := decimal.NewFromString(strings.TrimSpace(req.AnnualRatePercent))
	termMonths, _ := strconv.Atoi(strings.TrimSpace(req.TermMonths))

	loan, err := account.ApplyLoan(principal, rate, termMonths)
	if err != nil {
		logger.Error("loan service apply loan rejected", err, logger.Fields{
			"accountNumber": account.Number,
		})
		return commons.ErrorResponse[models.LoanView]("loan rejected", err.Error()), err
	}

	response := loanView(loan, len(account.Loans))

	logger.Info("loan service apply loan success", logger.Fields{
		"accountNumber":  account.Number,
		"loanId":         response.ID,
		"monthlyPayment": response.MonthlyPayment,
	})

	return commons.SuccessResponse("loan approved and credited", response), nil
}

// PayLoan pays toward the loan the operator picked from the listing.
// req.LoanNumber is 1-based; the domain index is zero-based.
func (s *LoanService) PayLoan(ctx context.Context, req models.PayLoanRequest) (commons.Response[models.PayLoanResponse], error) {
	logger.Info("loan service pay loan request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("loan service pay loan validation failed", err, nil)
		return commons.ErrorResponse[models.PayLoanResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(req.AccountNumber))
	if err != nil {
		return accountLookupFailure[models.PayLoanResponse](err)
	}

	loanNumber, _ := strconv.Atoi(strings.TrimSpace(req.LoanNumber))
	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	if err := account.PayLoan(loanNumber-1, amount); err != nil {
		logger.Error("loan service pay loan rejected", err, logger.Fields{
			"accountNumber": account.Number,
			"loanNumber":    loanNumber,
		})
		return commons.ErrorResponse[models.PayLoanResponse]("loan payment rejected", err.Error()), err
	}

	loan := account.Loans[loanNumber-1]
	response := models.PayLoanResponse{
		AccountNumber:    account.Number,
		LoanNumber:       loanNumber,
		AmountPaid:       amount.StringFixed(2),
		RemainingBalance: loan.RemainingBalance.StringFixed(2),
		LoanStatus:       string(loan.Status),
		Balance:          account.Balance.StringFixed(2),
	}

	logger.Info("loan service pay loan success", logger.Fields{
		"accountNumber":    response.AccountNumber,
		"loanNumber":       response.LoanNumber,
		"remainingBalance": response.RemainingBalance,
	})

	return commons.SuccessResponse("loan payment successful", response), nil
}

func (s *LoanService) ListLoans(ctx context.Context, accountNumber string) (commons.Response[[]models.LoanView], error) {
	logger.Info("loan service list loans request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		return accountLookupFailure[[]models.LoanView](err)
	}

	views := make([]models.LoanView, 0, len(account.Loans))
	for i, loan := range account.Loans {
		views = append(views, loanView(loan, i+1))
	}

	return commons.SuccessResponse("loans fetched successfully", views), nil
}

func loanView(loan *domain.Loan, loanNumber int) models.LoanView {
	return models.LoanView{
		LoanNumber:        loanNumber,
		ID:                loan.ID,
		Principal:         loan.Principal.StringFixed(2),
		AnnualRatePercent: loan.AnnualRatePercent.String(),
		TermMonths:        loan.TermMonths,
		MonthlyPayment:    loan.MonthlyPayment.StringFixed(2),
		RemainingBalance:  loan.RemainingBalance.StringFixed(2),
		Status:            string(loan.Status),
		StartDate:         loan.StartDate,
	}
}
