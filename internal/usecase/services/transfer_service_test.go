package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/usecase/services"
)

func TestTransferServiceValidationError(t *testing.T) {
	svc := services.NewTransferService(nil)

	_, err := svc.TransferFunds(context.Background(), models.TransferRequest{
		FromAccountNumber: "ACC1001",
		ToAccountNumber:   "ACC1001",
		Amount:            "50",
	})
	if err == nil {
		t.Fatal("expected validation error for self transfer")
	}
}

func TestTransferServiceMovesFundsBetweenAccounts(t *testing.T) {
	accountSvc, repo := newAccountService()
	transferSvc := services.NewTransferService(repo)
	ctx := context.Background()

	from, err := accountSvc.OpenSavingsAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Ada Perkins",
		InitialDeposit: "100",
	})
	if err != nil {
		t.Fatalf("open source account: %v", err)
	}
	to, err := accountSvc.OpenCheckingAccount(ctx, models.OpenAccountRequest{HolderName: "Ben Okafor"})
	if err != nil {
		t.Fatalf("open destination account: %v", err)
	}

	resp, err := transferSvc.TransferFunds(ctx, models.TransferRequest{
		FromAccountNumber: from.Data.AccountNumber,
		ToAccountNumber:   to.Data.AccountNumber,
		Amount:            "50",
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if resp.Data.FromBalance != "50.00" || resp.Data.ToBalance != "50.00" {
		t.Fatalf("balances = %s/%s, want 50.00/50.00", resp.Data.FromBalance, resp.Data.ToBalance)
	}

	fromHistory, err := accountSvc.GetTransactionHistory(ctx, from.Data.AccountNumber)
	if err != nil {
		t.Fatalf("source history: %v", err)
	}
	views := *fromHistory.Data
	if views[len(views)-1].Kind != "TRANSFER_OUT" {
		t.Fatalf("source last record = %s, want TRANSFER_OUT", views[len(views)-1].Kind)
	}

	toHistory, err := accountSvc.GetTransactionHistory(ctx, to.Data.AccountNumber)
	if err != nil {
		t.Fatalf("destination history: %v", err)
	}
	views = *toHistory.Data
	if len(views) != 1 || views[0].Kind != "TRANSFER_IN" {
		t.Fatalf("destination history = %+v, want exactly one TRANSFER_IN", views)
	}
}

func TestTransferServiceUnknownAccounts(t *testing.T) {
	accountSvc, repo := newAccountService()
	transferSvc := services.NewTransferService(repo)
	ctx := context.Background()

	opened, err := accountSvc.OpenSavingsAccount(ctx, models.OpenAccountRequest{
		HolderName:     "Ada Perkins",
		InitialDeposit: "100",
	})
	if err != nil {
		t.Fatalf("open account: %v", err)
	}

	resp, err := transferSvc.TransferFunds(ctx, models.TransferRequest{
		FromAccountNumber: opened.Data.AccountNumber,
		ToAccountNumber:   "ACC9999",
		Amount:            "50",
	})
	if err == nil || resp.Success {
		t.Fatal("expected transfer to unknown destination to fail")
	}

	after, err := accountSvc.GetAccount(ctx, opened.Data.AccountNumber)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if after.Data.Balance != "100.00" {
		t.Fatalf("source balance mutated on failed transfer: %s", after.Data.Balance)
	}
}
