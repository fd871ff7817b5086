// Package payoff simulates month-by-month amortization of a revolving
// credit-card balance under a fixed monthly payment. The simulation is pure
// and deterministic: each month's interest is itself a rounded, postable
// figure, matching real amortization statements.
package payoff

import (
	"errors"
	"fmt"

	"github.com/iwvelando/household-budget/pkg/constants"
	"github.com/iwvelando/household-budget/pkg/mathutil"
)

// ErrInvalidInput indicates a non-positive balance or payment, a negative
// APR, or a non-finite input.
var ErrInvalidInput = errors.New("invalid input")

// Inputs holds the three scalars driving a payoff simulation.
type Inputs struct {
	Balance        float64 `json:"balance"`
	APRPercent     float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// Payment holds the values for a given simulated month.
type Payment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Remaining float64 `json:"remaining"`
}

// Result is the outcome of a payoff simulation. Schedule carries only the
// first few months as a preview; Months counts the full payoff horizon.
type Result struct {
	Months        int       `json:"months"`
	TotalInterest float64   `json:"totalInterest"`
	Schedule      []Payment `json:"schedule"`
	NeverRepaid   bool      `json:"neverRepaid"`
	Inputs        Inputs    `json:"inputs"`
}

// InterestOnlyMinimum returns one month's interest charge on the balance,
// rounded to the currency's fraction digits. Paying exactly this amount
// leaves principal unchanged forever.
func InterestOnlyMinimum(balance, aprPercent float64, fractionDigits int) (float64, error) {
	if err := validate(balance, aprPercent, 1); err != nil {
		return 0, err
	}
	monthlyRate := aprPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	return mathutil.RoundTo(balance*monthlyRate, fractionDigits), nil
}

// Compute simulates the payoff of balance at the given APR under a fixed
// monthly payment.
//
// A payment that does not strictly exceed the current month's interest charge
// can never reduce principal, so the simulation short-circuits with
// NeverRepaid set rather than running to an iteration cap. The cap still
// exists as a defensive bound against rounding residues that never exactly
// reach zero; crossing it is also reported as NeverRepaid.
func Compute(balance, aprPercent, monthlyPayment float64, fractionDigits int) (*Result, error) {
	if err := validate(balance, aprPercent, monthlyPayment); err != nil {
		return nil, err
	}

	inputs := Inputs{Balance: balance, APRPercent: aprPercent, MonthlyPayment: monthlyPayment}
	monthlyRate := aprPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)

	result := &Result{Inputs: inputs, Schedule: []Payment{}}
	remaining := balance

	for month := 1; month <= constants.MaxPayoffMonths; month++ {
		interest := mathutil.RoundTo(remaining*monthlyRate, fractionDigits)
		if monthlyPayment <= interest {
			return &Result{NeverRepaid: true, Inputs: inputs, Schedule: []Payment{}}, nil
		}

		principal := mathutil.RoundTo(mathutil.Min(monthlyPayment-interest, remaining), fractionDigits)
		remaining = mathutil.RoundTo(remaining-principal, fractionDigits)

		result.Months = month
		result.TotalInterest = mathutil.RoundTo(result.TotalInterest+interest, fractionDigits)
		if len(result.Schedule) < constants.SchedulePreviewMonths {
			result.Schedule = append(result.Schedule, Payment{
				Month:     month,
				Payment:   mathutil.RoundTo(interest+principal, fractionDigits),
				Interest:  interest,
				Principal: principal,
				Remaining: remaining,
			})
		}

		if remaining <= 0 {
			return result, nil
		}
	}

	// Step 2 should have caught true non-convergence; reaching the bound means
	// rounding residues kept the balance hovering above zero.
	return &Result{NeverRepaid: true, Inputs: inputs, Schedule: []Payment{}}, nil
}

func validate(balance, aprPercent, monthlyPayment float64) error {
	if !mathutil.IsFinite(balance) || balance <= 0 {
		return fmt.Errorf("%w: balance must be positive, got %v", ErrInvalidInput, balance)
	}
	if !mathutil.IsFinite(aprPercent) || aprPercent < 0 {
		return fmt.Errorf("%w: apr must be non-negative, got %v", ErrInvalidInput, aprPercent)
	}
	if !mathutil.IsFinite(monthlyPayment) || monthlyPayment <= 0 {
		return fmt.Errorf("%w: monthly payment must be positive, got %v", ErrInvalidInput, monthlyPayment)
	}
	return nil
}
