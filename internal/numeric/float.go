// Package numeric provides a totally ordered float wrapper for values that are
// known not to be NaN, such as colour distances and cluster costs.
package numeric

import (
	"cmp"
	"math"
)

// Float is a float64 that is guaranteed not to be NaN.
// Comparisons between Floats therefore define a strict total order.
type Float struct {
	v float64
}

// New wraps v. It panics if v is NaN, since a NaN distance means the
// codec or the engine produced an invalid value.
func New(v float64) Float {
	if math.IsNaN(v) {
		panic("numeric: NaN passed to New")
	}
	return Float{v: v}
}

// Compare returns -1, 0 or +1 depending on whether f is less than, equal to,
// or greater than other.
func (f Float) Compare(other Float) int {
	return cmp.Compare(f.v, other.v)
}

// Compare orders two raw float64 values, panicking if either is NaN.
// It is suitable as the comparison function for slices.SortFunc and friends.
func Compare(a, b float64) int {
	return New(a).Compare(New(b))
}

// MaxIndex returns the index of the first maximum in values, or -1 when
// values is empty.
func MaxIndex(values []float64) int {
	best := -1
	for i, v := range values {
		if best < 0 || Compare(v, values[best]) > 0 {
			best = i
		}
	}
	return best
}
