package calculator

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Transaction is a single payment instruction.
type Transaction struct {
	Payer    string // Person who owes
	Receiver string // Person who is owed
	Amount   decimal.Decimal
}

// party is a creditor or debtor with the amount still outstanding.
type party struct {
	name   string
	amount decimal.Decimal
}

// SettleDebts turns balances into payments that bring everyone to zero.
//
// Algorithm (greedy largest-to-largest matching):
// - Creditors have balance > Tolerance, debtors balance < -Tolerance
// - Both lists sorted by amount, largest first; ties keep balance order
// - Largest debtor pays largest creditor round(min(owes, owed), 2)
// - A side moves on once less than Tolerance remains
//
// The result has at most creditors+debtors-1 payments. It is not guaranteed to
// be the smallest possible plan. Anything left over when one side runs out
// (only possible when balances do not sum to zero) is dropped.
func SettleDebts(balances *Balances) []Transaction {
	var creditors, debtors []party
	for _, b := range balances.Entries() {
		switch {
		case b.Amount.GreaterThan(Tolerance):
			creditors = append(creditors, party{name: b.Name, amount: b.Amount})
		case b.Amount.LessThan(Tolerance.Neg()):
			debtors = append(debtors, party{name: b.Name, amount: b.Amount.Neg()}) // Make positive
		}
	}

	largestFirst := func(a, b party) int { return b.amount.Cmp(a.amount) }
	slices.SortStableFunc(creditors, largestFirst)
	slices.SortStableFunc(debtors, largestFirst)

	transactions := []Transaction{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := round2(decimal.Min(debtor.amount, creditor.amount))
		if amount.IsPositive() {
			transactions = append(transactions, Transaction{
				Payer:    debtor.name,
				Receiver: creditor.name,
				Amount:   amount,
			})
		}

		debtor.amount = round2(debtor.amount.Sub(amount))
		creditor.amount = round2(creditor.amount.Sub(amount))

		if debtor.amount.LessThan(Tolerance) {
			i++
		}
		if creditor.amount.LessThan(Tolerance) {
			j++
		}
	}

	return transactions
}
