package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const width = 70

// center pads s on both sides to fill n columns.
func center(s string, n int) string {
	l := utf8.RuneCountInString(s)
	if l >= n {
		return s
	}
	left := (n - l) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-l-left)
}

// Banner returns the welcome banner shown before interactive input.
func Banner() string {
	line := strings.Repeat("#", width)
	return "\n" + line + "\n#" + center(" WELCOME TO SPLIT BILL CALCULATOR ", width-2) + "#\n" + line + "\n"
}

// WriteText renders the summary and settlement instructions for a terminal.
// currency is prefixed to every money amount.
func (r *Report) WriteText(w io.Writer, currency string) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("=", width)

	fmt.Fprintf(bw, "\n%s\n%s\n%s\n", rule, center("GROUP EXPENSE SUMMARY & SETTLEMENT REPORT", width), rule)

	fmt.Fprintln(bw, "\n[OVERALL SUMMARY]")
	fmt.Fprintf(bw, "  Total Expense: %s%s\n", currency, Money(r.Total))
	fmt.Fprintf(bw, "  Number of People: %d\n", r.Participants())
	fmt.Fprintf(bw, "  Equal Share per Person: %s%s\n", currency, Money(r.Share))

	fmt.Fprintln(bw, "\n[INDIVIDUAL SPENDING]")
	rows := r.Rows()
	for _, row := range rows {
		fmt.Fprintf(bw, "  %-20s spent %s%10s\n", row.Name, currency, Money(row.Paid))
	}

	fmt.Fprintln(bw, "\n[BALANCE SHEET]")
	fmt.Fprintf(bw, "  %-20s %15s %15s %15s\n", "Name", "Amount Paid", "Equal Share", "Balance")
	fmt.Fprintf(bw, "  %s\n", strings.Repeat("-", 65))
	for _, row := range rows {
		fmt.Fprintf(bw, "  %-20s %15s %15s %10s (%s)\n",
			row.Name, Money(row.Paid), Money(row.Share), Signed(row.Balance), row.Status)
	}

	fmt.Fprintln(bw, "\n[SETTLEMENT INSTRUCTIONS]")
	if r.Settled() {
		fmt.Fprintln(bw, "  ✓ Everyone is settled! No payments needed.")
	} else {
		fmt.Fprintf(bw, "  Total transactions needed: %d\n\n", len(r.Transactions))
		for i, t := range r.Transactions {
			fmt.Fprintf(bw, "  %d. %s should pay %s %s%s\n", i+1, t.Payer, t.Receiver, currency, Money(t.Amount))
		}
	}

	fmt.Fprintf(bw, "\n%s\n", rule)
	return bw.Flush()
}
