package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/api-sage/retail-banking-simulator/internal/adapter/console/models"
)

func (m *Menu) renderAccountInfo(view models.AccountView) {
	fmt.Fprintln(m.out, "\n========================================")
	fmt.Fprintf(m.out, "Account Type: %s\n", view.Kind)
	fmt.Fprintf(m.out, "Account Number: %s\n", view.AccountNumber)
	fmt.Fprintf(m.out, "Account Holder: %s\n", view.HolderName)
	fmt.Fprintf(m.out, "Balance: $%s\n", view.Balance)
	fmt.Fprintf(m.out, "Created: %s\n", view.CreatedAt)
	fmt.Fprintf(m.out, "Status: %s\n", view.Status)
	if view.InterestRate != "" {
		fmt.Fprintf(m.out, "Interest Rate: %s\n", view.InterestRate)
	}
	if view.OverdraftLimit != "" {
		fmt.Fprintf(m.out, "Overdraft Limit: $%s\n", view.OverdraftLimit)
	}
	fmt.Fprintln(m.out, "========================================")
}

func (m *Menu) renderTransactionHistory(views []models.TransactionView) {
	fmt.Fprintln(m.out, "\n--- Transaction History ---")
	if len(views) == 0 {
		fmt.Fprintln(m.out, "No transactions yet.")
		return
	}

	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Transaction ID\tType\tAmount\tDate\tDescription")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, view := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", view.ID, view.Kind, view.Amount, view.Timestamp, view.Description)
	}
	w.Flush()
}

func (m *Menu) renderLoans(views []models.LoanView) {
	if len(views) == 0 {
		fmt.Fprintln(m.out, "\nNo loans on this account.")
		return
	}

	fmt.Fprintln(m.out, "\n--- Loans ---")
	for _, view := range views {
		fmt.Fprintf(m.out, "\nLoan #%d\n", view.LoanNumber)
		fmt.Fprintf(m.out, "Loan ID: %s\n", view.ID)
		fmt.Fprintf(m.out, "Principal: $%s\n", view.Principal)
		fmt.Fprintf(m.out, "Interest Rate: %s%%\n", view.AnnualRatePercent)
		fmt.Fprintf(m.out, "Term: %d months\n", view.TermMonths)
		fmt.Fprintf(m.out, "Monthly Payment: $%s\n", view.MonthlyPayment)
		fmt.Fprintf(m.out, "Remaining Balance: $%s\n", view.RemainingBalance)
		fmt.Fprintf(m.out, "Status: %s\n", view.Status)
	}
}

func (m *Menu) renderAccountList(views []models.AccountView) {
	if len(views) == 0 {
		fmt.Fprintln(m.out, "\nNo accounts in the system.")
		return
	}

	fmt.Fprintln(m.out, "\n========== All Accounts ==========")
	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Acc Number\tHolder Name\tType\tBalance")
	fmt.Fprintln(w, strings.Repeat("-", 65))
	for _, view := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", view.AccountNumber, view.HolderName, view.Kind, view.Balance)
	}
	w.Flush()
}
