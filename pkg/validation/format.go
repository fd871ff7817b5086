// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/household-budget/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateFractionDigits checks that a currency fraction-digit count is sane.
// ISO 4217 currencies use between 0 and 4 fractional digits.
func ValidateFractionDigits(fractionDigits int) error {
	if fractionDigits < 0 || fractionDigits > 4 {
		return fmt.Errorf("expected fraction digits between 0 and 4, got %d", fractionDigits)
	}
	return nil
}
