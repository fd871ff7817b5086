package budget

import "errors"

// Sentinel errors returned by the calculation core. Degenerate-but-valid
// states (no people, zero income denominator) are defined outputs, not errors.
var (
	// ErrInvalidAmount indicates a negative or non-finite monetary input.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnsupportedFrequency indicates a cadence outside the defined enum.
	ErrUnsupportedFrequency = errors.New("unsupported frequency")
)
