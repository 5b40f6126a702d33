package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultBankName = "Greyhound Community Bank"
const defaultInterestRate = "3.5"
const defaultOverdraftLimit = "500"
const defaultSnapshotPath = "bank_snapshot.json"

type Config struct {
	BankName              string
	DefaultInterestRate   decimal.Decimal
	DefaultOverdraftLimit decimal.Decimal
	SnapshotPath          string
}

func Load() (Config, error) {
	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	interestRate, err := decimalEnv("DEFAULT_INTEREST_RATE", defaultInterestRate)
	if err != nil {
		return Config{}, err
	}
	if interestRate.IsNegative() {
		return Config{}, fmt.Errorf("DEFAULT_INTEREST_RATE cannot be negative")
	}

	overdraftLimit, err := decimalEnv("DEFAULT_OVERDRAFT_LIMIT", defaultOverdraftLimit)
	if err != nil {
		return Config{}, err
	}
	if overdraftLimit.IsNegative() {
		return Config{}, fmt.Errorf("DEFAULT_OVERDRAFT_LIMIT cannot be negative")
	}

	snapshotPath := strings.TrimSpace(os.Getenv("BANK_SNAPSHOT_PATH"))
	if snapshotPath == "" {
		snapshotPath = defaultSnapshotPath
	}

	return Config{
		BankName:              bankName,
		DefaultInterestRate:   interestRate,
		DefaultOverdraftLimit: overdraftLimit,
		SnapshotPath:          snapshotPath,
	}, nil
}

func decimalEnv(key string, fallback string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be numeric: %w", key, err)
	}

	return value, nil
}
