package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/api-sage/retail-banking-simulator/internal/domain"
)

// Snapshot is the write-only on-disk image of the ledger, saved at the
// end of a session for operators to inspect. Nothing ever loads it back
// into a running ledger.
type Snapshot struct {
	Meta     Meta              `json:"meta"`
	Accounts []AccountSnapshot `json:"accounts"`
}

type Meta struct {
	BankName     string    `json:"bankName"`
	AccountCount int       `json:"accountCount"`
	SavedAt      time.Time `json:"savedAt"`
}

type AccountSnapshot struct {
	Number       string         `json:"number"`
	HolderName   string         `json:"holderName"`
	Kind         string         `json:"kind"`
	Status       string         `json:"status"`
	Balance      string         `json:"balance"`
	CreatedAt    string         `json:"createdAt"`
	Transactions []string       `json:"transactions"`
	Loans        []LoanSnapshot `json:"loans,omitempty"`
}

type LoanSnapshot struct {
	ID                string `json:"id"`
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annualRatePercent"`
	TermMonths        int    `json:"termMonths"`
	MonthlyPayment    string `json:"monthlyPayment"`
	RemainingBalance  string `json:"remainingBalance"`
	Status            string `json:"status"`
	StartDate         string `json:"startDate"`
}

// BuildSnapshot flattens the ledger accounts into their on-disk form.
// Transactions keep their pipe-delimited wire encoding.
func BuildSnapshot(bankName string, accounts []*domain.Account) Snapshot {
	snap := Snapshot{
		Meta: Meta{
			BankName:     bankName,
			AccountCount: len(accounts),
		},
		Accounts: make([]AccountSnapshot, 0, len(accounts)),
	}

	for _, account := range accounts {
		accSnap := AccountSnapshot{
			Number:       account.Number,
			HolderName:   account.HolderName,
			Kind:         string(account.Kind),
			Status:       string(account.Status),
			Balance:      account.Balance.StringFixed(2),
			CreatedAt:    account.CreatedAt,
			Transactions: make([]string, 0, len(account.Transactions)),
		}
		for _, txn := range account.Transactions {
			accSnap.Transactions = append(accSnap.Transactions, txn.Encode())
		}
		for _, loan := range account.Loans {
			accSnap.Loans = append(accSnap.Loans, LoanSnapshot{
				ID:                loan.ID,
				Principal:         loan.Principal.StringFixed(2),
				AnnualRatePercent: loan.AnnualRatePercent.String(),
				TermMonths:        loan.TermMonths,
				MonthlyPayment:    loan.MonthlyPayment.StringFixed(2),
				RemainingBalance:  loan.RemainingBalance.StringFixed(2),
				Status:            string(loan.Status),
				StartDate:         loan.StartDate,
			})
		}
		snap.Accounts = append(snap.Accounts, accSnap)
	}

	return snap
}

// SaveSnapshot writes the snapshot as indented JSON. The write is
// atomic: a tmp file is written first, then renamed over the target, so
// an interrupted save never corrupts a previous snapshot.
func SaveSnapshot(path string, snap Snapshot) error {
	snap.Meta.SavedAt = time.Now()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
