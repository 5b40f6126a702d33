package domain

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/clock"
)

type AccountKind string

const (
	AccountKindSavings  AccountKind = "SAVINGS"
	AccountKindChecking AccountKind = "CHECKING"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account owns its balance, transaction history and loans exclusively.
// The two kinds differ only in policy, resolved by the Kind tag rather
// than type identity: CHECKING may draw the balance negative down to its
// overdraft limit, SAVINGS earns interest.
type Account struct {
	Number              string
	HolderName          string
	Kind                AccountKind
	Balance             decimal.Decimal
	InterestRatePercent decimal.Decimal // SAVINGS only
	OverdraftLimit      decimal.Decimal // CHECKING only
	Transactions        []Transaction
	Loans               []*Loan
	CreatedAt           string
	Status              AccountStatus
}

func NewSavingsAccount(number string, holderName string, interestRatePercent decimal.Decimal) *Account {
	return &Account{
		Number:              number,
		HolderName:          holderName,
		Kind:                AccountKindSavings,
		Balance:             decimal.Zero,
		InterestRatePercent: interestRatePercent,
		CreatedAt:           clock.Timestamp(),
		Status:              AccountStatusActive,
	}
}

func NewCheckingAccount(number string, holderName string, overdraftLimit decimal.Decimal) *Account {
	return &Account{
		Number:         number,
		HolderName:     holderName,
		Kind:           AccountKindChecking,
		Balance:        decimal.Zero,
		OverdraftLimit: overdraftLimit,
		CreatedAt:      clock.Timestamp(),
		Status:         AccountStatusActive,
	}
}

func (a *Account) ensureActive() error {
	if a.Status != AccountStatusActive {
		return ErrAccountInactive
	}
	return nil
}

// availableFunds is the amount a plain withdrawal may draw on: the
// balance for SAVINGS, balance plus overdraft headroom for CHECKING.
func (a *Account) availableFunds() decimal.Decimal {
	if a.Kind == AccountKindChecking {
		return a.Balance.Add(a.OverdraftLimit)
	}
	return a.Balance
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindDeposit, amount, "Cash deposit"))
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.availableFunds().LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindWithdraw, amount, "Cash withdrawal"))
	return nil
}

// Transfer moves amount to target. The precondition checks the plain
// balance regardless of kind: a checking account cannot fund a transfer
// out of its overdraft headroom. All validation completes before either
// side mutates, so a rejected transfer observes no partial state; a
// successful one conserves the summed balance of the two accounts.
func (a *Account) Transfer(target *Account, amount decimal.Decimal) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if err := target.ensureActive(); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	target.Balance = target.Balance.Add(amount)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindTransferOut, amount, "Transfer to "+target.Number))
	target.Transactions = append(target.Transactions, NewTransaction(TransactionKindTransferIn, amount, "Transfer from "+a.Number))
	return nil
}

// ApplyLoan opens a loan contract, credits the principal to the balance
// and records the disbursement. There is no credit check.
func (a *Account) ApplyLoan(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) (*Loan, error) {
	if err := a.ensureActive(); err != nil {
		return nil, err
	}

	loan, err := OpenLoan(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}

	a.Loans = append(a.Loans, loan)
	a.Balance = a.Balance.Add(principal)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindLoanDisbursement, principal, "Loan disbursement"))
	return loan, nil
}

// PayLoan pays amount toward the loan at loanIndex (zero-based). The
// balance is only debited once the contract has accepted the payment, so
// a rejected payment leaves the account untouched.
func (a *Account) PayLoan(loanIndex int, amount decimal.Decimal) error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	if loanIndex < 0 || loanIndex >= len(a.Loans) {
		return ErrInvalidLoanReference
	}

	loan := a.Loans[loanIndex]
	if loan.Status != LoanStatusActive {
		return ErrLoanAlreadyPaidOff
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	if err := loan.ApplyPayment(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Sub(amount)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindLoanPayment, amount, "Loan payment"))
	return nil
}

// SupportsInterest reports whether the account kind earns interest.
func (a *Account) SupportsInterest() bool {
	return a.Kind == AccountKindSavings
}

// ApplyInterest credits one shot of interest at the account's rate and
// returns the amount credited. Non-interest-bearing kinds are rejected
// without mutation.
func (a *Account) ApplyInterest() (decimal.Decimal, error) {
	if err := a.ensureActive(); err != nil {
		return decimal.Zero, err
	}
	if !a.SupportsInterest() {
		return decimal.Zero, ErrUnsupportedOperation
	}

	interest := a.Balance.Mul(a.InterestRatePercent).Div(decimal.NewFromInt(100))
	a.Balance = a.Balance.Add(interest)
	a.Transactions = append(a.Transactions, NewTransaction(TransactionKindInterest, interest, "Interest credit"))
	return interest, nil
}

// Close deactivates the account. The transition happens once; history
// stays readable, but every mutating operation rejects an inactive
// account.
func (a *Account) Close() error {
	if err := a.ensureActive(); err != nil {
		return err
	}
	a.Status = AccountStatusInactive
	return nil
}
