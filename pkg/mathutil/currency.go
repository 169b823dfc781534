// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/gear-rental/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// ApplyFraction returns the share of value given by fraction, e.g.
// ApplyFraction(200, 0.05) == 10.
func ApplyFraction(value, fraction float64) float64 {
	return value * fraction
}

// Increase raises value by the given fraction of itself.
func Increase(value, fraction float64) float64 {
	return value + ApplyFraction(value, fraction)
}

// Decrease lowers value by the given fraction of itself.
func Decrease(value, fraction float64) float64 {
	return value - ApplyFraction(value, fraction)
}
