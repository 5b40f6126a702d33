package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/clock"
)

type TransactionKind string

const (
	TransactionKindDeposit          TransactionKind = "DEPOSIT"
	TransactionKindWithdraw         TransactionKind = "WITHDRAW"
	TransactionKindTransferOut      TransactionKind = "TRANSFER_OUT"
	TransactionKindTransferIn       TransactionKind = "TRANSFER_IN"
	TransactionKindLoanDisbursement TransactionKind = "LOAN_DISBURSEMENT"
	TransactionKindLoanPayment      TransactionKind = "LOAN_PAYMENT"
	TransactionKindInterest         TransactionKind = "INTEREST"
)

// Transaction is one balance-affecting event. Records are immutable once
// created and belong to exactly one account's ordered history; the
// history is append-only and never reordered.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Timestamp   string
	Description string
}

// NewTransaction stamps the current time and mints a fresh id. Amount
// validation belongs to the operation that appends the record, not here.
func NewTransaction(kind TransactionKind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          "TXN-" + uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Timestamp:   clock.Timestamp(),
		Description: description,
	}
}

// Encode renders the record in the pipe-delimited history format:
// id|kind|amount|timestamp|description.
func (t Transaction) Encode() string {
	return strings.Join([]string{
		t.ID,
		string(t.Kind),
		t.Amount.StringFixed(2),
		t.Timestamp,
		t.Description,
	}, "|")
}

// DecodeTransaction parses a record produced by Encode. The encoded id
// and timestamp are preserved, so encode/decode is a true round trip.
// Only the trailing description may itself contain pipes.
func DecodeTransaction(text string) (Transaction, error) {
	parts := strings.SplitN(text, "|", 5)
	if len(parts) != 5 {
		return Transaction{}, fmt.Errorf("transaction record must have 5 fields, got %d", len(parts))
	}

	kind := TransactionKind(strings.TrimSpace(parts[1]))
	if !kind.valid() {
		return Transaction{}, fmt.Errorf("unknown transaction kind %q", parts[1])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction amount must be numeric: %w", err)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction amount cannot be negative")
	}

	return Transaction{
		ID:          parts[0],
		Kind:        kind,
		Amount:      amount,
		Timestamp:   parts[3],
		Description: parts[4],
	}, nil
}

func (k TransactionKind) valid() bool {
	switch k {
	case TransactionKindDeposit, TransactionKindWithdraw,
		TransactionKindTransferOut, TransactionKindTransferIn,
		TransactionKindLoanDisbursement, TransactionKindLoanPayment,
		TransactionKindInterest:
		return true
	}
	return false
}
