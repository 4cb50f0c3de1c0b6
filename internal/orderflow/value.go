package orderflow

import "math"

// Value is an optional numeric used for normalized metrics. Division by a
// zero average volume, or any other non-finite result, produces a missing
// Value instead of a NaN that would poison downstream sums.
type Value struct {
	Num   float64
	Valid bool
}

// NewValue wraps f, marking NaN and infinities as missing.
func NewValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{Num: f, Valid: true}
}

// Product returns a×b under the rule "missing × anything = 0": if either
// side is missing the product contributes nothing to a score.
func Product(a, b Value) float64 {
	if !a.Valid || !b.Valid {
		return 0
	}
	return a.Num * b.Num
}
