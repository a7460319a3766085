package guess

import "cmp"

// Ordering is the outcome of comparing a guess with the secret number.
type Ordering int

// Possible orderings, matching cmp.Compare.
const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// String returns the lower-case name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Compare classifies g relative to secret.
func Compare(g Guess, secret int) Ordering {
	return Ordering(cmp.Compare(g.Value(), secret))
}
