// Package validation provides common validation utilities.
package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/mathutil"
)

// ErrInvalidArgument is returned when an operation is constructed with an
// argument outside its domain, e.g. an unknown adjustment sign.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvariantViolation is returned when a traversal observes state that a
// correct caller can never produce, e.g. rendering a kit with no matching
// discount result.
var ErrInvariantViolation = errors.New("invariant violation")

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateSign checks that an adjustment sign is "+" or "-".
func ValidateSign(sign string) error {
	if sign != constants.SignIncrease && sign != constants.SignDecrease {
		return fmt.Errorf("%w: expected sign of %q or %q, got %q",
			ErrInvalidArgument, constants.SignIncrease, constants.SignDecrease, sign)
	}
	return nil
}

// ValidateFraction checks that a percentage expressed as a fraction is a
// finite, non-negative number.
func ValidateFraction(name string, fraction float64) error {
	if !mathutil.IsFinite(fraction) {
		return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidArgument, name, fraction)
	}
	if fraction < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidArgument, name, fraction)
	}
	return nil
}
