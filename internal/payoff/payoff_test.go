package payoff

import (
	"errors"
	"math"
	"testing"
)

func TestInterestOnlyMinimum(t *testing.T) {
	tests := []struct {
		name           string
		balance        float64
		aprPercent     float64
		fractionDigits int
		expected       float64
	}{
		{
			name:           "Typical card balance",
			balance:        1000,
			aprPercent:     24,
			fractionDigits: 2,
			expected:       20.00, // 1000 * 0.24 / 12
		},
		{
			name:           "Zero APR",
			balance:        1000,
			aprPercent:     0,
			fractionDigits: 2,
			expected:       0.00,
		},
		{
			name:           "Rounding at half cent",
			balance:        1002.50,
			aprPercent:     18,
			fractionDigits: 2,
			expected:       15.04, // 1002.50 * 0.015 = 15.0375
		},
		{
			name:           "Zero fraction digits currency",
			balance:        100000,
			aprPercent:     15,
			fractionDigits: 0,
			expected:       1250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := InterestOnlyMinimum(tt.balance, tt.aprPercent, tt.fractionDigits)
			if err != nil {
				t.Fatalf("InterestOnlyMinimum() error = %v", err)
			}
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("InterestOnlyMinimum() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestComputeZeroInterestPayoff(t *testing.T) {
	result, err := Compute(1000, 0, 100, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.NeverRepaid {
		t.Errorf("Compute() NeverRepaid = true, expected false")
	}
	if result.Months != 10 {
		t.Errorf("Compute() Months = %d, expected 10", result.Months)
	}
	if result.TotalInterest != 0 {
		t.Errorf("Compute() TotalInterest = %.2f, expected 0", result.TotalInterest)
	}
	if len(result.Schedule) != 3 {
		t.Fatalf("Compute() schedule length = %d, expected 3 preview entries", len(result.Schedule))
	}
	if result.Schedule[0].Remaining != 900 || result.Schedule[2].Remaining != 700 {
		t.Errorf("Compute() schedule remaining = %.2f/%.2f, expected 900/700",
			result.Schedule[0].Remaining, result.Schedule[2].Remaining)
	}
}

func TestComputeNeverRepaidAtInterestOnlyMinimum(t *testing.T) {
	minimum, err := InterestOnlyMinimum(1000, 24, 2)
	if err != nil {
		t.Fatalf("InterestOnlyMinimum() error = %v", err)
	}
	if minimum != 20.00 {
		t.Fatalf("InterestOnlyMinimum() = %.2f, expected 20.00", minimum)
	}

	result, err := Compute(1000, 24, minimum, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !result.NeverRepaid {
		t.Errorf("Compute() NeverRepaid = false, expected true when payment equals interest")
	}
	if result.Months != 0 {
		t.Errorf("Compute() Months = %d, expected 0", result.Months)
	}
	if result.TotalInterest != 0 {
		t.Errorf("Compute() TotalInterest = %.2f, expected 0", result.TotalInterest)
	}
	if len(result.Schedule) != 0 {
		t.Errorf("Compute() schedule length = %d, expected 0", len(result.Schedule))
	}
}

func TestComputeConvergingPayoff(t *testing.T) {
	result, err := Compute(1000, 24, 50, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.NeverRepaid {
		t.Fatalf("Compute() NeverRepaid = true, expected converging payoff")
	}
	if result.Months <= 10 {
		t.Errorf("Compute() Months = %d, expected more than 10 since interest eats into payments", result.Months)
	}
	if result.TotalInterest <= 0 {
		t.Errorf("Compute() TotalInterest = %.2f, expected positive interest", result.TotalInterest)
	}

	// First month posts exactly one month of interest on the opening balance.
	if result.Schedule[0].Interest != 20.00 {
		t.Errorf("first month interest = %.2f, expected 20.00", result.Schedule[0].Interest)
	}

	// Remaining balance strictly decreases across the preview.
	lastRemaining := 1000.0
	for _, payment := range result.Schedule {
		if payment.Remaining >= lastRemaining {
			t.Errorf("remaining balance should strictly decrease, got %.2f after %.2f",
				payment.Remaining, lastRemaining)
		}
		if math.Abs(payment.Interest+payment.Principal-payment.Payment) > 0.001 {
			t.Errorf("payment %d: interest %.2f + principal %.2f != payment %.2f",
				payment.Month, payment.Interest, payment.Principal, payment.Payment)
		}
		lastRemaining = payment.Remaining
	}
}

func TestComputeFinalPaymentDoesNotOverpay(t *testing.T) {
	// 250 at 0% with 100/month pays 100, 100, 50.
	result, err := Compute(250, 0, 100, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.Months != 3 {
		t.Fatalf("Compute() Months = %d, expected 3", result.Months)
	}
	final := result.Schedule[2]
	if final.Payment != 50 {
		t.Errorf("final payment = %.2f, expected capped 50", final.Payment)
	}
	if final.Remaining != 0 {
		t.Errorf("final remaining = %.2f, expected 0", final.Remaining)
	}
}

func TestComputeDefensiveIterationCap(t *testing.T) {
	// One cent above the interest-only minimum at a low APR: principal starts
	// at a cent per month and the payoff horizon runs past the simulation
	// bound, so the cap reports non-convergence.
	result, err := Compute(1000, 1.2, 1.01, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !result.NeverRepaid {
		t.Errorf("Compute() NeverRepaid = false, expected cap to report non-convergence")
	}
	if result.Months != 0 || result.TotalInterest != 0 || len(result.Schedule) != 0 {
		t.Errorf("Compute() capped result should be zeroed, got months=%d interest=%.2f schedule=%d",
			result.Months, result.TotalInterest, len(result.Schedule))
	}
}

func TestComputeEchoesInputs(t *testing.T) {
	result, err := Compute(1000, 24, 50, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	expected := Inputs{Balance: 1000, APRPercent: 24, MonthlyPayment: 50}
	if result.Inputs != expected {
		t.Errorf("Compute() Inputs = %+v, expected %+v", result.Inputs, expected)
	}
}

func TestComputeInvalidInputs(t *testing.T) {
	tests := []struct {
		name           string
		balance        float64
		aprPercent     float64
		monthlyPayment float64
	}{
		{"Zero balance", 0, 24, 50},
		{"Negative balance", -100, 24, 50},
		{"Negative APR", 1000, -1, 50},
		{"Zero payment", 1000, 24, 0},
		{"Negative payment", 1000, 24, -50},
		{"NaN balance", math.NaN(), 24, 50},
		{"Infinite payment", 1000, 24, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.balance, tt.aprPercent, tt.monthlyPayment, 2)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Compute() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}

func TestComputeDeterminism(t *testing.T) {
	first, err := Compute(2500.75, 19.99, 120, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := Compute(2500.75, 19.99, 120, 2)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if first.Months != second.Months || first.TotalInterest != second.TotalInterest {
		t.Errorf("Compute() is not deterministic: %+v vs %+v", first, second)
	}
}
