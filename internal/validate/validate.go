// Package validate holds the input rules for a group expense as pure
// functions. Each returns the parsed value or an error wrapping one of the
// sentinel errors below, so callers can decide whether to re-prompt, reject a
// request or abort.
package validate

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/models"
)

var (
	// ErrNotInteger is returned when the group size is not a whole number.
	ErrNotInteger = errors.New("not a valid integer")
	// ErrInvalidCount is returned when the group has fewer than one person.
	ErrInvalidCount = errors.New("number of people must be at least 1")
	// ErrEmptyName is returned for blank names.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrDuplicateName is returned when a name is already in the group.
	ErrDuplicateName = errors.New("name already entered")
	// ErrInvalidAmount is returned when an amount is not a number.
	ErrInvalidAmount = errors.New("not a valid number")
	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Count parses the number of people in the group.
func Count(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	if n <= 0 {
		return 0, ErrInvalidCount
	}
	return n, nil
}

// Name trims s and checks it against the names already in the group.
func Name(s string, existing []string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", ErrEmptyName
	}
	if slices.Contains(existing, name) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return name, nil
}

// Amount parses how much one person paid.
func Amount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, NonNegative(amount)
}

// NonNegative rejects amounts below zero.
func NonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	return nil
}

// Participants checks a whole group: every name non-empty and unique, every
// amount non-negative. Names are compared as given, without trimming.
func Participants(participants []models.Participant) error {
	seen := make(map[string]bool, len(participants))
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("participant %d: %w", i+1, ErrEmptyName)
		}
		if seen[p.Name] {
			return fmt.Errorf("participant %d: %w: %q", i+1, ErrDuplicateName, p.Name)
		}
		seen[p.Name] = true
		if err := NonNegative(p.Paid); err != nil {
			return fmt.Errorf("participant %d (%s): %w", i+1, p.Name, err)
		}
	}
	return nil
}
