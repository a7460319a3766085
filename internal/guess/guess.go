// Package guess defines the bounded guess value and its comparison
// against the secret number.
package guess

import (
	"errors"
	"fmt"
)

// Inclusive bounds for a valid guess and for the secret number.
const (
	Min = 1
	Max = 100
)

// ErrOutOfRange is matched by every *RangeError via errors.Is.
var ErrOutOfRange = errors.New("guess out of range")

// RangeError reports a value that falls outside [Min, Max].
type RangeError struct {
	Value int
	Min   int
	Max   int
}

// Error names the offending value and the valid range.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value should be between %d and %d, got %d instead", e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Guess is an integer guaranteed to lie in [Min, Max].
type Guess struct {
	// offset from Min, so the zero Guess is Min and still in range
	off int
}

// New validates v and wraps it. Values outside [Min, Max] return a
// *RangeError and the zero Guess.
func New(v int) (Guess, error) {
	if v < Min || v > Max {
		return Guess{}, &RangeError{Value: v, Min: Min, Max: Max}
	}
	return Guess{off: v - Min}, nil
}

// MustNew is like New but panics if v is out of range.
func MustNew(v int) Guess {
	g, err := New(v)
	if err != nil {
		panic(err)
	}
	return g
}

// Value returns the wrapped integer.
func (g Guess) Value() int {
	return g.off + Min
}
