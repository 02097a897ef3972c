// Package console collects a group expense interactively from a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/validate"
)

// ErrInputClosed is returned when input ends before the group is complete.
var ErrInputClosed = errors.New("input closed before the group was complete")

// Collector prompts for the group size, names and amounts, re-prompting
// until each answer passes validation.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCollector reads answers from r and writes prompts and errors to w.
func NewCollector(r io.Reader, w io.Writer) *Collector {
	return &Collector{in: bufio.NewScanner(r), out: w}
}

// Collect runs the prompts and returns the group.
func (c *Collector) Collect() (models.Group, error) {
	n, err := ask(c, "\n==> Enter the number of people in the group: ", validate.Count)
	if err != nil {
		return models.Group{}, err
	}

	fmt.Fprintln(c.out, "\n==> Enter each person's name and the amount they spent:")

	names := make([]string, 0, n)
	group := models.Group{Participants: make([]models.Participant, 0, n)}
	for i := range n {
		name, err := ask(c, fmt.Sprintf("    Person %d name: ", i+1), func(s string) (string, error) {
			return validate.Name(s, names)
		})
		if err != nil {
			return models.Group{}, err
		}
		names = append(names, name)

		paid, err := ask(c, fmt.Sprintf("    Amount spent by %s: ", name), validate.Amount)
		if err != nil {
			return models.Group{}, err
		}
		group.Participants = append(group.Participants, models.Participant{Name: name, Paid: paid})
	}

	slog.Debug("Group collected", "participants", len(group.Participants))
	return group, nil
}

// ask prompts until parse accepts a line.
func ask[T any](c *Collector, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return zero, fmt.Errorf("failed to read input: %w", err)
			}
			return zero, ErrInputClosed
		}

		v, err := parse(c.in.Text())
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(c.out, "    [ERROR] %s\n", Message(err, c.in.Text()))
	}
}

// Message turns a validation error into the text shown to the user.
func Message(err error, input string) string {
	switch {
	case errors.Is(err, validate.ErrInvalidCount):
		return "Number of people must be at least 1."
	case errors.Is(err, validate.ErrNotInteger):
		return "Please enter a valid integer."
	case errors.Is(err, validate.ErrEmptyName):
		return "Name cannot be empty."
	case errors.Is(err, validate.ErrDuplicateName):
		return fmt.Sprintf("'%s' already entered. Please use a different name.", strings.TrimSpace(input))
	case errors.Is(err, validate.ErrNegativeAmount):
		return "Amount cannot be negative."
	case errors.Is(err, validate.ErrInvalidAmount):
		return "Please enter a valid number."
	default:
		return err.Error()
	}
}
