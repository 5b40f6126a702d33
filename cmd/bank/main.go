package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/storage"
	"github.com/api-sage/retail-banking-simulator/internal/config"
	"github.com/api-sage/retail-banking-simulator/internal/usecase/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	accountRepo := memory.NewAccountRepository()
	accountService := services.NewAccountService(accountRepo, cfg.DefaultInterestRate, cfg.DefaultOverdraftLimit)
	transferService := services.NewTransferService(accountRepo)
	loanService := services.NewLoanService(accountRepo)

	menu := console.New(os.Stdin, os.Stdout, cfg.BankName, accountService, transferService, loanService)
	if err := menu.Run(ctx); err != nil {
		log.Fatalf("console session: %v", err)
	}

	accounts, err := accountRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("list accounts for snapshot: %v", err)
	}
	if err := storage.SaveSnapshot(cfg.SnapshotPath, storage.BuildSnapshot(cfg.BankName, accounts)); err != nil {
		log.Printf("save snapshot: %v", err)
	}
}
