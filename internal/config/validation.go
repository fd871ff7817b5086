package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/pkg/constants"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors (invalid amounts, unknown cadences) still
// surface when the records reach the calculation core; warnings flag the
// mistakes worth fixing before then.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Currency.FractionDigits < 0 {
		warnings = append(warnings, fmt.Sprintf("currency fractionDigits %d is negative; using %d",
			c.Currency.FractionDigits, constants.DefaultFractionDigits))
	}

	method := budget.DistributionMethod(c.Household.DistributionMethod)
	if method != budget.DistributionEven && method != budget.DistributionIncomeBased {
		warnings = append(warnings, fmt.Sprintf("unknown distributionMethod %q; expected %q or %q",
			c.Household.DistributionMethod, budget.DistributionEven, budget.DistributionIncomeBased))
	}

	if len(c.People) == 0 {
		warnings = append(warnings, "no people configured; household shares will be 0")
	}

	for _, person := range c.People {
		for _, income := range person.Income {
			if income.Amount < 0 {
				warnings = append(warnings, fmt.Sprintf("income %q for %s has negative amount %.2f",
					income.Label, person.Name, income.Amount))
			}
			if !budget.ValidFrequency(budget.Frequency(income.Frequency)) {
				warnings = append(warnings, fmt.Sprintf("income %q for %s has unknown frequency %q",
					income.Label, person.Name, income.Frequency))
			}
		}
	}

	for _, expense := range c.Expenses {
		if expense.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("expense %q has negative amount %.2f",
				expense.Description, expense.Amount))
		}
		if !budget.ValidFrequency(budget.Frequency(expense.Frequency)) {
			warnings = append(warnings, fmt.Sprintf("expense %q has unknown frequency %q",
				expense.Description, expense.Frequency))
		}

		category := budget.Category(expense.Category)
		if category != budget.CategoryHousehold && category != budget.CategoryPersonal {
			warnings = append(warnings, fmt.Sprintf("expense %q has unknown category %q",
				expense.Description, expense.Category))
		}
		if category == budget.CategoryPersonal && expense.Person == "" {
			warnings = append(warnings, fmt.Sprintf("personal expense %q names no person",
				expense.Description))
		}

		if expense.Date != "" {
			if _, err := time.Parse(constants.DateTimeLayout, expense.Date); err != nil {
				warnings = append(warnings, fmt.Sprintf("expense %q has malformed date %q",
					expense.Description, expense.Date))
			}
		}
		if expense.EndDate != "" {
			if budget.Frequency(expense.Frequency) == budget.FrequencyOneTime {
				warnings = append(warnings, fmt.Sprintf("expense %q is one-time; endDate %q has no effect",
					expense.Description, expense.EndDate))
			}
			if _, err := time.Parse(constants.DateTimeLayout, expense.EndDate); err != nil {
				warnings = append(warnings, fmt.Sprintf("expense %q has malformed endDate %q",
					expense.Description, expense.EndDate))
			} else if expense.Date != "" {
				start, err := time.Parse(constants.DateTimeLayout, expense.Date)
				if err == nil {
					end, _ := time.Parse(constants.DateTimeLayout, expense.EndDate)
					if end.Before(start) {
						warnings = append(warnings, fmt.Sprintf("expense %q ends %q before it starts %q",
							expense.Description, expense.EndDate, expense.Date))
					}
				}
			}
		}
	}

	return warnings
}
