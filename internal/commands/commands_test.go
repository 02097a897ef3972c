package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSplitbill(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestInteractive(t *testing.T) {
	out, err := runSplitbill(t, "3\nA\n90\nB\n30\nC\n60\n", "--currency", "$")
	require.NoError(t, err)

	assert.Contains(t, out, "WELCOME TO SPLIT BILL CALCULATOR")
	assert.Contains(t, out, "Total Expense: $180.00")
	assert.Contains(t, out, "1. B should pay A $30.00")
}

func TestInteractive_InputClosed(t *testing.T) {
	_, err := runSplitbill(t, "2\nA\n")
	assert.Error(t, err)
}

func TestSettle_CSV(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "trip.csv")
	require.NoError(t, os.WriteFile(file, []byte("name,amount\nA,100\nB,0\nC,0\nD,0\n"), 0o644))
	export := filepath.Join(dir, "plan.csv")

	out, err := runSplitbill(t, "", "settle", "--file", file, "--export", export, "--currency", "€")
	require.NoError(t, err)

	assert.Contains(t, out, "Equal Share per Person: €25.00")
	assert.Contains(t, out, "3. D should pay A €25.00")

	data, err := os.ReadFile(export)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2,C,A,25.00")
}

func TestSettle_DefaultCurrencyFromEnvironment(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(file, []byte("participants:\n  - name: A\n    amount: 10\n  - name: B\n    amount: 10\n"), 0o644))
	t.Setenv("CURRENCY_SYMBOL", "£")

	out, err := runSplitbill(t, "", "settle", "-f", file)
	require.NoError(t, err)

	assert.Contains(t, out, "Total Expense: £20.00")
	assert.Contains(t, out, "Everyone is settled!")
}

func TestSettle_Errors(t *testing.T) {
	_, err := runSplitbill(t, "", "settle")
	assert.Error(t, err, "--file is required")

	file := filepath.Join(t.TempDir(), "trip.csv")
	require.NoError(t, os.WriteFile(file, []byte("name,amount\nA,1\nA,2\n"), 0o644))
	_, err = runSplitbill(t, "", "settle", "--file", file)
	assert.Error(t, err)

	_, err = runSplitbill(t, "", "settle", "--file", file, "--export", "plan.txt")
	assert.Error(t, err)
}
