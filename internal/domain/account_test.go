package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/domain"
)

func newSavings(t *testing.T) *domain.Account {
	t.Helper()
	return domain.NewSavingsAccount("ACC1001", "Ada Perkins", decimal.NewFromFloat(3.5))
}

func newChecking(t *testing.T) *domain.Account {
	t.Helper()
	return domain.NewCheckingAccount("ACC1002", "Ben Okafor", decimal.NewFromInt(500))
}

func TestDepositIncreasesBalanceAndAppendsRecord(t *testing.T) {
	account := newSavings(t)

	if err := account.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if got := account.Balance.StringFixed(2); got != "100.00" {
		t.Fatalf("balance = %s, want 100.00", got)
	}
	if len(account.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(account.Transactions))
	}
	if account.Transactions[0].Kind != domain.TransactionKindDeposit {
		t.Fatalf("kind = %s, want DEPOSIT", account.Transactions[0].Kind)
	}
}

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	account := newSavings(t)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		if err := account.Deposit(amount); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("deposit %s: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if !account.Balance.IsZero() {
		t.Fatalf("balance mutated on rejected deposit: %s", account.Balance)
	}
	if len(account.Transactions) != 0 {
		t.Fatalf("transactions appended on rejected deposit: %d", len(account.Transactions))
	}
}

func TestSavingsWithdrawRequiresSufficientBalance(t *testing.T) {
	account := newSavings(t)
	if err := account.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := account.Withdraw(decimal.NewFromInt(150)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if got := account.Balance.StringFixed(2); got != "100.00" {
		t.Fatalf("balance mutated on rejected withdrawal: %s", got)
	}

	if err := account.Withdraw(decimal.NewFromInt(40)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := account.Balance.StringFixed(2); got != "60.00" {
		t.Fatalf("balance = %s, want 60.00", got)
	}
}

func TestCheckingWithdrawMayUseOverdraft(t *testing.T) {
	account := newChecking(t)

	if err := account.Withdraw(decimal.NewFromInt(400)); err != nil {
		t.Fatalf("withdraw into overdraft: %v", err)
	}
	if got := account.Balance.StringFixed(2); got != "-400.00" {
		t.Fatalf("balance = %s, want -400.00", got)
	}

	// 400 already drawn; only 100 of headroom remains.
	if err := account.Withdraw(decimal.NewFromInt(101)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if err := account.Withdraw(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("withdraw to the overdraft limit: %v", err)
	}
	if got := account.Balance.StringFixed(2); got != "-500.00" {
		t.Fatalf("balance = %s, want -500.00", got)
	}
}

func TestTransferConservesTotalBalance(t *testing.T) {
	from := newSavings(t)
	to := newChecking(t)
	if err := from.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := from.Transfer(to, decimal.NewFromInt(50)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := from.Balance.StringFixed(2); got != "50.00" {
		t.Fatalf("source balance = %s, want 50.00", got)
	}
	if got := to.Balance.StringFixed(2); got != "50.00" {
		t.Fatalf("destination balance = %s, want 50.00", got)
	}
	if !from.Balance.Add(to.Balance).Equal(decimal.NewFromInt(100)) {
		t.Fatalf("transfer did not conserve the summed balance")
	}

	lastFrom := from.Transactions[len(from.Transactions)-1]
	if lastFrom.Kind != domain.TransactionKindTransferOut {
		t.Fatalf("source record kind = %s, want TRANSFER_OUT", lastFrom.Kind)
	}
	lastTo := to.Transactions[len(to.Transactions)-1]
	if lastTo.Kind != domain.TransactionKindTransferIn {
		t.Fatalf("destination record kind = %s, want TRANSFER_IN", lastTo.Kind)
	}
}

func TestTransferNeverDrawsOnOverdraft(t *testing.T) {
	from := newChecking(t)
	to := newSavings(t)
	if err := from.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	// A withdrawal of 150 would succeed against the overdraft, but a
	// transfer of the same amount must not.
	if err := from.Transfer(to, decimal.NewFromInt(150)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if got := from.Balance.StringFixed(2); got != "100.00" {
		t.Fatalf("source balance mutated on rejected transfer: %s", got)
	}
	if !to.Balance.IsZero() {
		t.Fatalf("destination balance mutated on rejected transfer: %s", to.Balance)
	}
}

func TestApplyLoanCreditsPrincipal(t *testing.T) {
	account := newSavings(t)

	loan, err := account.ApplyLoan(decimal.NewFromInt(1200), decimal.NewFromInt(12), 12)
	if err != nil {
		t.Fatalf("apply loan: %v", err)
	}

	if got := account.Balance.StringFixed(2); got != "1200.00" {
		t.Fatalf("balance = %s, want 1200.00", got)
	}
	if len(account.Loans) != 1 || account.Loans[0] != loan {
		t.Fatalf("loan not appended to the account")
	}
	last := account.Transactions[len(account.Transactions)-1]
	if last.Kind != domain.TransactionKindLoanDisbursement {
		t.Fatalf("record kind = %s, want LOAN_DISBURSEMENT", last.Kind)
	}
}

func TestPayLoanBelowMinimumLeavesAccountUntouched(t *testing.T) {
	account := newSavings(t)
	if _, err := account.ApplyLoan(decimal.NewFromInt(1200), decimal.NewFromInt(12), 12); err != nil {
		t.Fatalf("apply loan: %v", err)
	}

	if err := account.PayLoan(0, decimal.NewFromInt(100)); !errors.Is(err, domain.ErrPaymentBelowMinimum) {
		t.Fatalf("err = %v, want ErrPaymentBelowMinimum", err)
	}
	if got := account.Balance.StringFixed(2); got != "1200.00" {
		t.Fatalf("balance mutated on rejected payment: %s", got)
	}
	if got := account.Loans[0].RemainingBalance.StringFixed(2); got != "1200.00" {
		t.Fatalf("loan balance mutated on rejected payment: %s", got)
	}
}

func TestPayLoanValidatesReferenceAndFunds(t *testing.T) {
	account := newSavings(t)
	if _, err := account.ApplyLoan(decimal.NewFromInt(1200), decimal.NewFromInt(12), 12); err != nil {
		t.Fatalf("apply loan: %v", err)
	}

	if err := account.PayLoan(5, decimal.NewFromInt(200)); !errors.Is(err, domain.ErrInvalidLoanReference) {
		t.Fatalf("out-of-range index: err = %v, want ErrInvalidLoanReference", err)
	}
	if err := account.PayLoan(-1, decimal.NewFromInt(200)); !errors.Is(err, domain.ErrInvalidLoanReference) {
		t.Fatalf("negative index: err = %v, want ErrInvalidLoanReference", err)
	}

	if err := account.Withdraw(decimal.NewFromInt(1100)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if err := account.PayLoan(0, decimal.NewFromInt(200)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestPayLoanOnPaidOffLoanNeverTouchesBalance(t *testing.T) {
	account := newSavings(t)
	if _, err := account.ApplyLoan(decimal.NewFromInt(200), decimal.Zero, 2); err != nil {
		t.Fatalf("apply loan: %v", err)
	}
	if err := account.PayLoan(0, decimal.NewFromInt(200)); err != nil {
		t.Fatalf("payoff: %v", err)
	}
	if account.Loans[0].Status != domain.LoanStatusPaidOff {
		t.Fatalf("loan status = %s, want PAID_OFF", account.Loans[0].Status)
	}

	balanceBefore := account.Balance
	if err := account.PayLoan(0, decimal.NewFromInt(200)); !errors.Is(err, domain.ErrLoanAlreadyPaidOff) {
		t.Fatalf("err = %v, want ErrLoanAlreadyPaidOff", err)
	}
	if !account.Balance.Equal(balanceBefore) {
		t.Fatalf("balance mutated by payment on paid-off loan")
	}
}

func TestApplyInterestIsASavingsCapability(t *testing.T) {
	savings := newSavings(t)
	if err := savings.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	interest, err := savings.ApplyInterest()
	if err != nil {
		t.Fatalf("apply interest: %v", err)
	}
	if got := interest.StringFixed(2); got != "3.50" {
		t.Fatalf("interest = %s, want 3.50", got)
	}
	if got := savings.Balance.StringFixed(2); got != "103.50" {
		t.Fatalf("balance = %s, want 103.50", got)
	}

	checking := newChecking(t)
	if _, err := checking.ApplyInterest(); !errors.Is(err, domain.ErrUnsupportedOperation) {
		t.Fatalf("checking interest: err = %v, want ErrUnsupportedOperation", err)
	}
	if len(checking.Transactions) != 0 {
		t.Fatalf("capability mismatch appended a record")
	}
}

func TestClosedAccountRejectsEveryMutation(t *testing.T) {
	account := newSavings(t)
	other := newChecking(t)
	if err := account.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := account.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if account.Status != domain.AccountStatusInactive {
		t.Fatalf("status = %s, want INACTIVE", account.Status)
	}
	if err := account.Close(); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("second close: err = %v, want ErrAccountInactive", err)
	}

	if err := account.Deposit(decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("deposit on closed account: %v", err)
	}
	if err := account.Withdraw(decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("withdraw on closed account: %v", err)
	}
	if err := account.Transfer(other, decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("transfer from closed account: %v", err)
	}
	if err := other.Transfer(account, decimal.NewFromInt(10)); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("transfer into closed account: %v", err)
	}
	if _, err := account.ApplyLoan(decimal.NewFromInt(100), decimal.NewFromInt(5), 6); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("loan on closed account: %v", err)
	}
	if _, err := account.ApplyInterest(); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("interest on closed account: %v", err)
	}

	if got := account.Balance.StringFixed(2); got != "100.00" {
		t.Fatalf("closed account balance mutated: %s", got)
	}
}
