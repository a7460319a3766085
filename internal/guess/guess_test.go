package guess

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InRange(t *testing.T) {
	for v := Min; v <= Max; v++ {
		g, err := New(v)
		require.NoError(t, err, "New(%d)", v)
		assert.Equal(t, v, g.Value())
	}
}

func TestNew_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"zero", 0},
		{"just above", 101},
		{"negative", -7},
		{"three digits", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.value)
			require.Error(t, err)
			assert.Equal(t, Guess{}, g)

			assert.ErrorIs(t, err, ErrOutOfRange)

			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.value, rangeErr.Value)
			assert.Equal(t, Min, rangeErr.Min)
			assert.Equal(t, Max, rangeErr.Max)

			assert.Contains(t, err.Error(), fmt.Sprint(tt.value))
			assert.Contains(t, err.Error(), "between 1 and 100")
		})
	}
}

func TestRangeError_Wrapped(t *testing.T) {
	_, err := New(1000)
	wrapped := fmt.Errorf("invalid guess: %w", err)

	assert.True(t, errors.Is(wrapped, ErrOutOfRange))
	assert.False(t, errors.Is(wrapped, errors.New("guess out of range")))
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, 42, MustNew(42).Value())
	assert.PanicsWithError(t, "value should be between 1 and 100, got 1000 instead", func() {
		MustNew(1000)
	})
}

func TestGuess_ZeroValueInRange(t *testing.T) {
	var g Guess
	assert.Equal(t, Min, g.Value())
}
