package models

import "github.com/shopspring/decimal"

// Participant is one person splitting the expense.
type Participant struct {
	// Name identifies the person. Unique within a group, case-sensitive.
	Name string `json:"name" yaml:"name"`

	// Paid is how much this person spent on behalf of the group.
	// Never negative.
	Paid decimal.Decimal `json:"amount" yaml:"amount"`
}

// Group is the ordered list of people splitting one expense.
type Group struct {
	Participants []Participant
}

// Columns returns the participant names and amounts as parallel slices,
// the shape the calculator works on.
func (g Group) Columns() (names []string, amounts []decimal.Decimal) {
	names = make([]string, len(g.Participants))
	amounts = make([]decimal.Decimal, len(g.Participants))
	for i, p := range g.Participants {
		names[i] = p.Name
		amounts[i] = p.Paid
	}
	return names, amounts
}

