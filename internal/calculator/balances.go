package calculator

import (
	"github.com/shopspring/decimal"
)

// Tolerance is the smallest amount treated as an outstanding balance.
// Balances within ±Tolerance of zero are considered settled.
var Tolerance = decimal.New(1, -2)

// round2 rounds a money value to cents.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Balance is one person's net position.
type Balance struct {
	Name   string
	Amount decimal.Decimal // Positive = receives money, Negative = pays money
}

// Balances maps participant names to their balance, preserving the order in
// which names were first set.
//
// Names are unique keys: setting a name that is already present overwrites
// its amount and keeps its original position.
type Balances struct {
	entries []Balance
	index   map[string]int
}

// NewBalances returns an empty mapping with room for n names.
func NewBalances(n int) *Balances {
	return &Balances{
		entries: make([]Balance, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set stores amount for name.
func (b *Balances) Set(name string, amount decimal.Decimal) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.entries[i].Amount = amount
		return
	}
	b.index[name] = len(b.entries)
	b.entries = append(b.entries, Balance{Name: name, Amount: amount})
}

// Get returns the balance for name.
func (b *Balances) Get(name string) (decimal.Decimal, bool) {
	if b == nil {
		return decimal.Zero, false
	}
	i, ok := b.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return b.entries[i].Amount, true
}

// Len returns the number of names in the mapping.
func (b *Balances) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Entries returns a copy of the balances in insertion order.
func (b *Balances) Entries() []Balance {
	if b == nil {
		return nil
	}
	out := make([]Balance, len(b.entries))
	copy(out, b.entries)
	return out
}

// Sum adds up every balance. For balances produced by ComputeBalances the
// result is within Len() cents of zero.
func (b *Balances) Sum() decimal.Decimal {
	sum := decimal.Zero
	if b == nil {
		return sum
	}
	for _, e := range b.entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// ComputeBalances reduces what each person paid into the total expense,
// the equal share per person and each person's balance.
//
// Algorithm:
// - total = sum of all amounts
// - share = total / len(names), or 0 when there are no names
// - balance = round(amount - share, 2), keyed by name in input order
//
// Names are expected to be unique and amounts non-negative; neither is
// checked here. A repeated name keeps only its last balance. Names and
// amounts are paired by position and the walk stops at the shorter slice.
func ComputeBalances(names []string, amounts []decimal.Decimal) (total, share decimal.Decimal, balances *Balances) {
	total = decimal.Sum(decimal.Zero, amounts...)

	share = decimal.Zero
	if n := len(names); n > 0 {
		share = total.Div(decimal.NewFromInt(int64(n)))
	}

	balances = NewBalances(len(names))
	for i, name := range names {
		if i >= len(amounts) {
			break
		}
		balances.Set(name, round2(amounts[i].Sub(share)))
	}

	return total, share, balances
}
