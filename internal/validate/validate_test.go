package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitbill/internal/models"
)

func TestCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "3", want: 3},
		{input: "  12 ", want: 12},
		{input: "0", wantErr: ErrInvalidCount},
		{input: "-2", wantErr: ErrInvalidCount},
		{input: "three", wantErr: ErrNotInteger},
		{input: "2.5", wantErr: ErrNotInteger},
		{input: "", wantErr: ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Count(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestName(t *testing.T) {
	existing := []string{"Alice", "Bob"}

	name, err := Name("  Charlie ", existing)
	require.NoError(t, err)
	assert.Equal(t, "Charlie", name)

	_, err = Name("   ", existing)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = Name("Bob", existing)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Names are case-sensitive.
	name, err = Name("bob", existing)
	require.NoError(t, err)
	assert.Equal(t, "bob", name)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "42", want: "42"},
		{input: " 19.99 ", want: "19.99"},
		{input: "0", want: "0"},
		{input: "1e2", want: "100"},
		{input: "-5", wantErr: ErrNegativeAmount},
		{input: "ten", wantErr: ErrInvalidAmount},
		{input: "", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Amount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParticipants(t *testing.T) {
	ok := []models.Participant{
		{Name: "Alice", Paid: decimal.NewFromInt(10)},
		{Name: "alice", Paid: decimal.Zero},
	}
	assert.NoError(t, Participants(ok))
	assert.NoError(t, Participants(nil))

	err := Participants([]models.Participant{
		{Name: "Alice", Paid: decimal.NewFromInt(10)},
		{Name: "Alice", Paid: decimal.NewFromInt(5)},
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "participant 2")

	err = Participants([]models.Participant{{Name: " ", Paid: decimal.Zero}})
	assert.ErrorIs(t, err, ErrEmptyName)

	err = Participants([]models.Participant{{Name: "Bob", Paid: decimal.NewFromInt(-1)}})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}
