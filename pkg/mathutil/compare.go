// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// IsStrictlyPositive checks if a value is a finite number greater than zero
func IsStrictlyPositive(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0) && val > 0
}

// IsFiniteNonNegative checks if a value is a finite number greater than or
// equal to zero
func IsFiniteNonNegative(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0) && val >= 0
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// RelativeError returns the error of got relative to want. When want is zero
// the absolute error is returned instead.
func RelativeError(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
