package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		fractionDigits int
		expected       string
	}{
		{"Simple amount", 1234.56, 2, "$1,234.56"},
		{"Negative amount", -1234.56, 2, "-$1,234.56"},
		{"No separators needed", 999.99, 2, "$999.99"},
		{"Large amount", 1234567.89, 2, "$1,234,567.89"},
		{"Zero", 0, 2, "$0.00"},
		{"Zero fraction digits", 1500, 0, "$1,500"},
		{"Pads missing cents", 5, 2, "$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount, tt.fractionDigits)
			if result != tt.expected {
				t.Errorf("Currency(%v, %d) = %q, expected %q",
					tt.amount, tt.fractionDigits, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		fractionDigits int
		expected       string
	}{
		{"Simple amount", 1234.56, 2, "1,234.56"},
		{"Negative amount", -1234.56, 2, "-1,234.56"},
		{"Zero fraction digits", -1500, 0, "-1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumericCurrency(tt.amount, tt.fractionDigits)
			if result != tt.expected {
				t.Errorf("NumericCurrency(%v, %d) = %q, expected %q",
					tt.amount, tt.fractionDigits, result, tt.expected)
			}
		})
	}
}
