package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestValidateFractionDigits(t *testing.T) {
	tests := []struct {
		name      string
		digits    int
		expectErr bool
	}{
		{"Standard two digits", 2, false},
		{"Zero digits", 0, false},
		{"Four digits", 4, false},
		{"Negative", -1, true},
		{"Too many", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFractionDigits(tt.digits)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateFractionDigits(%d) error = %v, expectErr %v", tt.digits, err, tt.expectErr)
			}
		})
	}
}
