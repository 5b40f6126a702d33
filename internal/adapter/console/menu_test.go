package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console"
	"github.com/api-sage/retail-banking-simulator/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking-simulator/internal/usecase/services"
)

func runSession(t *testing.T, script string) string {
	t.Helper()

	repo := memory.NewAccountRepository()
	accountSvc := services.NewAccountService(repo, decimal.NewFromFloat(3.5), decimal.NewFromInt(500))
	transferSvc := services.NewTransferService(repo)
	loanSvc := services.NewLoanService(repo)

	var out bytes.Buffer
	menu := console.New(strings.NewReader(script), &out, "Greyhound Community Bank", accountSvc, transferSvc, loanSvc)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	return out.String()
}

func TestMenuSessionOpensDepositsAndExits(t *testing.T) {
	script := strings.Join([]string{
		"1",           // create savings
		"Ada Perkins", // holder name
		"100",         // initial deposit
		"3",           // deposit
		"ACC1001",
		"50",
		"6", // check balance
		"ACC1001",
		"14", // exit
	}, "\n") + "\n"

	output := runSession(t, script)

	for _, want := range []string{
		"Savings Account created successfully!",
		"Account Number: ACC1001",
		"Deposit successful! New balance: $150.00",
		"Balance: $150.00",
		"Thank you for using Greyhound Community Bank!",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n---\n%s", want, output)
		}
	}
}

func TestMenuReportsRejectionsAndReprompts(t *testing.T) {
	script := strings.Join([]string{
		"1",
		"Ada Perkins",
		"100",
		"4", // withdraw more than the balance
		"ACC1001",
		"150",
		"abc", // non-numeric menu choice
		"99",  // out-of-range menu choice
		"6",   // the session is still usable
		"ACC1001",
		"14",
	}, "\n") + "\n"

	output := runSession(t, script)

	for _, want := range []string{
		"Insufficient funds",
		"Invalid input! Please enter a number.",
		"Invalid choice! Please try again.",
		"Balance: $100.00",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n---\n%s", want, output)
		}
	}
}

func TestMenuSessionEndsCleanlyOnClosedInput(t *testing.T) {
	// No exit selection; the input stream just ends.
	output := runSession(t, "12\n")

	if !strings.Contains(output, "No accounts in the system.") {
		t.Fatalf("output missing empty account listing\n---\n%s", output)
	}
}

func TestMenuLoanFlow(t *testing.T) {
	script := strings.Join([]string{
		"2", // create checking
		"Ben Okafor",
		"0",
		"8", // apply for loan
		"ACC1001",
		"1200",
		"12",
		"12",
		"9", // pay loan, below the monthly payment
		"ACC1001",
		"1",
		"100",
		"10", // view loans
		"ACC1001",
		"14",
	}, "\n") + "\n"

	output := runSession(t, script)

	for _, want := range []string{
		"Loan of $1200.00 approved and credited!",
		"Monthly payment: $106.62",
		"Payment below minimum monthly payment",
		"Remaining Balance: $1200.00",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n---\n%s", want, output)
		}
	}
}
