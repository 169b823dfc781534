package validation

import (
	"errors"
	"math"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error = %v", tt.format, err)
			}
		})
	}
}

func TestValidateSign(t *testing.T) {
	tests := []struct {
		name      string
		sign      string
		expectErr bool
	}{
		{"Plus", "+", false},
		{"Minus", "-", false},
		{"Empty", "", true},
		{"Word", "plus", true},
		{"Multiplication", "*", true},
		{"Padded", " + ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSign(tt.sign)
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ValidateSign(%q) = %v, expected ErrInvalidArgument", tt.sign, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateSign(%q) unexpected error = %v", tt.sign, err)
			}
		})
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name      string
		fraction  float64
		expectErr bool
	}{
		{"Typical discount", 0.05, false},
		{"Zero", 0, false},
		{"Whole", 1, false},
		{"Above one is allowed", 1.5, false},
		{"Negative", -0.1, true},
		{"NaN", math.NaN(), true},
		{"Infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction("discount", tt.fraction)
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ValidateFraction(%v) = %v, expected ErrInvalidArgument", tt.fraction, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateFraction(%v) unexpected error = %v", tt.fraction, err)
			}
		})
	}
}
