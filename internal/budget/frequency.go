package budget

import (
	"fmt"

	"github.com/iwvelando/household-budget/pkg/constants"
	"github.com/iwvelando/household-budget/pkg/mathutil"
)

// MonthlyAmount converts an amount tagged with a recurrence cadence into the
// equivalent monthly amount. One-time records contribute nothing to the
// recurring monthly view; they are reported separately by date. No rounding is
// applied here; rounding happens only at aggregation and display boundaries so
// error does not compound across conversions.
func MonthlyAmount(amount float64, frequency Frequency) (float64, error) {
	if !mathutil.IsFinite(amount) || amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	switch frequency {
	case FrequencyOneTime:
		return 0, nil
	case FrequencyDaily:
		return amount * (constants.DaysPerYear / constants.MonthsPerYear), nil
	case FrequencyWeekly:
		return amount * (constants.WeeksPerYear / constants.MonthsPerYear), nil
	case FrequencyMonthly:
		return amount, nil
	case FrequencyYearly:
		return amount / constants.MonthsPerYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFrequency, frequency)
	}
}

// ValidFrequency reports whether the given cadence is part of the defined
// enum.
func ValidFrequency(frequency Frequency) bool {
	switch frequency {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}
