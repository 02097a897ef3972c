// Package report runs a group expense through the calculator and renders the
// result: a plain-text report for the terminal and CSV, XLSX and PDF exports.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/models"
)

// Status labels a balance for display.
type Status string

const (
	StatusReceives Status = "Receives"
	StatusPays     Status = "Pays"
	StatusEven     Status = "Even"
)

// StatusOf returns the label for a balance.
func StatusOf(balance decimal.Decimal) Status {
	switch {
	case balance.IsPositive():
		return StatusReceives
	case balance.IsNegative():
		return StatusPays
	default:
		return StatusEven
	}
}

// Row is one line of the balance sheet.
type Row struct {
	Name    string
	Paid    decimal.Decimal
	Share   decimal.Decimal
	Balance decimal.Decimal
	Status  Status
}

// Report is everything computed for one group expense.
type Report struct {
	Names        []string
	Amounts      []decimal.Decimal
	Total        decimal.Decimal
	Share        decimal.Decimal
	Balances     *calculator.Balances
	Transactions []calculator.Transaction
}

// New computes balances and the settlement plan for the given columns.
func New(names []string, amounts []decimal.Decimal) *Report {
	total, share, balances := calculator.ComputeBalances(names, amounts)
	return &Report{
		Names:        names,
		Amounts:      amounts,
		Total:        total,
		Share:        share,
		Balances:     balances,
		Transactions: calculator.SettleDebts(balances),
	}
}

// ForGroup computes the report for a group.
func ForGroup(g models.Group) *Report {
	return New(g.Columns())
}

// Participants returns the group size.
func (r *Report) Participants() int {
	return len(r.Names)
}

// Settled reports whether no payments are needed.
func (r *Report) Settled() bool {
	return len(r.Transactions) == 0
}

// Rows returns the balance sheet in input order.
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, len(r.Names))
	for i, name := range r.Names {
		if i >= len(r.Amounts) {
			break
		}
		balance, _ := r.Balances.Get(name)
		rows = append(rows, Row{
			Name:    name,
			Paid:    r.Amounts[i],
			Share:   r.Share,
			Balance: balance,
			Status:  StatusOf(balance),
		})
	}
	return rows
}

// Money formats an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Signed formats an amount with two decimals and an explicit sign.
func Signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
