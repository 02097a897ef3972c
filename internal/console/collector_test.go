package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) (string, []string, []decimal.Decimal, error) {
	t.Helper()
	var out bytes.Buffer
	group, err := NewCollector(strings.NewReader(input), &out).Collect()
	names, amounts := group.Columns()
	return out.String(), names, amounts, err
}

func TestCollect(t *testing.T) {
	out, names, amounts, err := collect(t, "3\nA\n90\nB\n30\nC\n60\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, names)
	require.Len(t, amounts, 3)
	assert.True(t, amounts[0].Equal(decimal.NewFromInt(90)))
	assert.True(t, amounts[2].Equal(decimal.NewFromInt(60)))

	assert.Contains(t, out, "==> Enter the number of people in the group: ")
	assert.Contains(t, out, "    Person 2 name: ")
	assert.Contains(t, out, "    Amount spent by C: ")
	assert.NotContains(t, out, "[ERROR]")
}

func TestCollect_RepromptsOnInvalidInput(t *testing.T) {
	input := strings.Join([]string{
		"zero",
		"0",
		"2",
		"  ",
		" Alice ",
		"abc",
		"-4",
		"12.50",
		"Alice",
		"Bob",
		"0",
	}, "\n") + "\n"

	out, names, amounts, err := collect(t, input)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob"}, names)
	assert.True(t, amounts[0].Equal(decimal.RequireFromString("12.5")))
	assert.True(t, amounts[1].IsZero())

	for _, msg := range []string{
		"    [ERROR] Please enter a valid integer.\n",
		"    [ERROR] Number of people must be at least 1.\n",
		"    [ERROR] Name cannot be empty.\n",
		"    [ERROR] Please enter a valid number.\n",
		"    [ERROR] Amount cannot be negative.\n",
		"    [ERROR] 'Alice' already entered. Please use a different name.\n",
	} {
		assert.Contains(t, out, msg)
	}
	assert.Equal(t, 2, strings.Count(out, "    Person 1 name: "))
	assert.Equal(t, 2, strings.Count(out, "    Person 2 name: "))
}

func TestCollect_InputClosed(t *testing.T) {
	_, _, _, err := collect(t, "2\nA\n10\n")
	assert.ErrorIs(t, err, ErrInputClosed)

	_, _, _, err = collect(t, "")
	assert.ErrorIs(t, err, ErrInputClosed)
}
