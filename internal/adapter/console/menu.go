package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
	"github.com/api-sage/retail-banking-simulator/internal/commons"
	"github.com/api-sage/retail-banking-simulator/internal/usecase/service_interfaces"
)

// Menu is the interactive console front end. It translates numbered
// selections and free-text prompts into service calls and renders the
// responses. Operator mistakes are reported and re-prompted, never
// fatal; only a closed input stream ends the session.
type Menu struct {
	in        *bufio.Reader
	out       io.Writer
	bankName  string
	accounts  service_interfaces.AccountService
	transfers service_interfaces.TransferService
	loans     service_interfaces.LoanService
}

func New(
	in io.Reader,
	out io.Writer,
	bankName string,
	accounts service_interfaces.AccountService,
	transfers service_interfaces.TransferService,
	loans service_interfaces.LoanService,
) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		bankName:  bankName,
		accounts:  accounts,
		transfers: transfers,
		loans:     loans,
	}
}

// Run loops over the main menu until the operator exits or the input
// stream closes. It returns nil on a normal exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMainMenu()

		line, err := m.readLine("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input! Please enter a number.")
			continue
		}

		if choice == 14 {
			fmt.Fprintf(m.out, "\nThank you for using %s!\n", m.bankName)
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.openAccount(ctx, true)
	case 2:
		return m.openAccount(ctx, false)
	case 3:
		return m.deposit(ctx)
	case 4:
		return m.withdraw(ctx)
	case 5:
		return m.transfer(ctx)
	case 6:
		return m.checkBalance(ctx)
	case 7:
		return m.transactionHistory(ctx)
	case 8:
		return m.applyLoan(ctx)
	case 9:
		return m.payLoan(ctx)
	case 10:
		return m.viewLoans(ctx)
	case 11:
		return m.applyInterest(ctx)
	case 12:
		return m.listAccounts(ctx)
	case 13:
		return m.closeAccount(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid choice! Please try again.")
		return nil
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.out, "\n========================================")
	fmt.Fprintf(m.out, "     %s\n", m.bankName)
	fmt.Fprintln(m.out, "========================================")
	fmt.Fprintln(m.out, "1.  Create Savings Account")
	fmt.Fprintln(m.out, "2.  Create Checking Account")
	fmt.Fprintln(m.out, "3.  Deposit Money")
	fmt.Fprintln(m.out, "4.  Withdraw Money")
	fmt.Fprintln(m.out, "5.  Transfer Money")
	fmt.Fprintln(m.out, "6.  Check Balance")
	fmt.Fprintln(m.out, "7.  View Transaction History")
	fmt.Fprintln(m.out, "8.  Apply for Loan")
	fmt.Fprintln(m.out, "9.  Pay Loan")
	fmt.Fprintln(m.out, "10. View Loans")
	fmt.Fprintln(m.out, "11. Apply Interest (Savings)")
	fmt.Fprintln(m.out, "12. View All Accounts")
	fmt.Fprintln(m.out, "13. Close Account")
	fmt.Fprintln(m.out, "14. Exit")
	fmt.Fprintln(m.out, "========================================")
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}

	return line, nil
}

func (m *Menu) openAccount(ctx context.Context, savings bool) error {
	name, err := m.readLine("Enter account holder name: ")
	if err != nil {
		return err
	}
	deposit, err := m.readLine("Enter initial deposit: $")
	if err != nil {
		return err
	}

	req := models.OpenAccountRequest{HolderName: name, InitialDeposit: deposit}

	var resp commons.Response[models.OpenAccountResponse]
	if savings {
		resp, _ = m.accounts.OpenSavingsAccount(ctx, req)
	} else {
		resp, _ = m.accounts.OpenCheckingAccount(ctx, req)
	}

	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	kind := "Checking"
	if savings {
		kind = "Savings"
	}
	fmt.Fprintf(m.out, "\n%s Account created successfully!\n", kind)
	fmt.Fprintf(m.out, "Account Number: %s\n", resp.Data.AccountNumber)
	return nil
}

func (m *Menu) deposit(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}
	amount, err := m.readLine("Enter amount to deposit: $")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.DepositFunds(ctx, models.DepositFundsRequest{
		AccountNumber: accountNumber,
		Amount:        amount,
	})
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Deposit successful! New balance: $%s\n", resp.Data.Balance)
	return nil
}

func (m *Menu) withdraw(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}
	amount, err := m.readLine("Enter amount to withdraw: $")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.WithdrawFunds(ctx, models.WithdrawFundsRequest{
		AccountNumber: accountNumber,
		Amount:        amount,
	})
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Withdrawal successful! New balance: $%s\n", resp.Data.Balance)
	return nil
}

func (m *Menu) transfer(ctx context.Context) error {
	from, err := m.readLine("Enter source account number: ")
	if err != nil {
		return err
	}
	to, err := m.readLine("Enter destination account number: ")
	if err != nil {
		return err
	}
	amount, err := m.readLine("Enter amount to transfer: $")
	if err != nil {
		return err
	}

	resp, _ := m.transfers.TransferFunds(ctx, models.TransferRequest{
		FromAccountNumber: from,
		ToAccountNumber:   to,
		Amount:            amount,
	})
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Transferred $%s successfully!\n", resp.Data.Amount)
	return nil
}

func (m *Menu) checkBalance(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.GetAccount(ctx, accountNumber)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	m.renderAccountInfo(*resp.Data)
	return nil
}

func (m *Menu) transactionHistory(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.GetTransactionHistory(ctx, accountNumber)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	m.renderTransactionHistory(*resp.Data)
	return nil
}

func (m *Menu) applyLoan(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}
	principal, err := m.readLine("Enter loan amount: $")
	if err != nil {
		return err
	}
	rate, err := m.readLine("Enter interest rate (%): ")
	if err != nil {
		return err
	}
	term, err := m.readLine("Enter term (months): ")
	if err != nil {
		return err
	}

	resp, _ := m.loans.ApplyLoan(ctx, models.ApplyLoanRequest{
		AccountNumber:     accountNumber,
		Principal:         principal,
		AnnualRatePercent: rate,
		TermMonths:        term,
	})
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Loan of $%s approved and credited!\n", resp.Data.Principal)
	fmt.Fprintf(m.out, "Monthly payment: $%s\n", resp.Data.MonthlyPayment)
	return nil
}

func (m *Menu) payLoan(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}

	listResp, _ := m.loans.ListLoans(ctx, accountNumber)
	if !listResp.Success {
		reportFailure(m.out, listResp)
		return nil
	}
	m.renderLoans(*listResp.Data)
	if len(*listResp.Data) == 0 {
		return nil
	}

	loanNumber, err := m.readLine("Enter loan number to pay: ")
	if err != nil {
		return err
	}
	amount, err := m.readLine("Enter payment amount: $")
	if err != nil {
		return err
	}

	resp, _ := m.loans.PayLoan(ctx, models.PayLoanRequest{
		AccountNumber: accountNumber,
		LoanNumber:    loanNumber,
		Amount:        amount,
	})
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Loan payment of $%s successful!\n", resp.Data.AmountPaid)
	fmt.Fprintf(m.out, "Remaining loan balance: $%s (%s)\n", resp.Data.RemainingBalance, resp.Data.LoanStatus)
	return nil
}

func (m *Menu) viewLoans(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number: ")
	if err != nil {
		return err
	}

	resp, _ := m.loans.ListLoans(ctx, accountNumber)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	m.renderLoans(*resp.Data)
	return nil
}

func (m *Menu) applyInterest(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter savings account number: ")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.ApplyInterest(ctx, accountNumber)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Interest of $%s applied! New balance: $%s\n", resp.Data.Interest, resp.Data.Balance)
	return nil
}

func (m *Menu) listAccounts(ctx context.Context) error {
	resp, _ := m.accounts.ListAccounts(ctx)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	m.renderAccountList(*resp.Data)
	return nil
}

func (m *Menu) closeAccount(ctx context.Context) error {
	accountNumber, err := m.readLine("Enter account number to close: ")
	if err != nil {
		return err
	}

	resp, _ := m.accounts.CloseAccount(ctx, accountNumber)
	if !resp.Success {
		reportFailure(m.out, resp)
		return nil
	}

	fmt.Fprintf(m.out, "Account %s closed.\n", resp.Data.AccountNumber)
	return nil
}

func reportFailure[T any](out io.Writer, resp commons.Response[T]) {
	if len(resp.Errors) > 0 {
		fmt.Fprintf(out, "%s: %s\n", resp.Message, strings.Join(resp.Errors, "; "))
		return
	}

	fmt.Fprintln(out, resp.Message)
}
