package budget

import (
	"sort"

	"github.com/iwvelando/household-budget/pkg/datetime"
	"github.com/iwvelando/household-budget/pkg/mathutil"
)

// PersonSummary is the per-person monthly budget view consumed by the CLI,
// API, and output formatting. All figures are monthly-normalized and rounded
// to the currency's fraction digits.
type PersonSummary struct {
	PersonID         string  `json:"personId"`
	Name             string  `json:"name"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
	PersonalExpenses float64 `json:"personalExpenses"`
	HouseholdShare   float64 `json:"householdShare"`
	Remaining        float64 `json:"remaining"`
}

// OneTimeEntry is a non-recurring record reported separately by date rather
// than amortized into the monthly view.
type OneTimeEntry struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	PersonID    string  `json:"personId,omitempty"`
}

// RemainingIncome composes the aggregators into a per-person remaining-income
// figure: income minus personal expenses minus household share. Negative
// results are valid and meaningful (over-budget), not errors.
func RemainingIncome(person Person, expenses []Expense, people []Person, settings HouseholdSettings) (float64, error) {
	income, err := PersonIncome(person)
	if err != nil {
		return 0, err
	}

	personal, err := PersonalExpenses(expenses, person.ID)
	if err != nil {
		return 0, err
	}

	householdTotal, err := HouseholdExpensesTotal(expenses)
	if err != nil {
		return 0, err
	}

	share, err := HouseholdShare(householdTotal, people, settings.DistributionMethod, person.ID)
	if err != nil {
		return 0, err
	}

	return income - personal - share, nil
}

// Summarize produces the per-person budget view for every person. This is the
// display boundary: each figure is rounded here to the currency's fraction
// digits, after all unrounded normalization and distribution.
func Summarize(people []Person, expenses []Expense, settings HouseholdSettings, fractionDigits int) ([]PersonSummary, error) {
	householdTotal, err := HouseholdExpensesTotal(expenses)
	if err != nil {
		return nil, err
	}

	summaries := make([]PersonSummary, 0, len(people))
	for _, person := range people {
		income, err := PersonIncome(person)
		if err != nil {
			return nil, err
		}

		personal, err := PersonalExpenses(expenses, person.ID)
		if err != nil {
			return nil, err
		}

		share, err := HouseholdShare(householdTotal, people, settings.DistributionMethod, person.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, PersonSummary{
			PersonID:         person.ID,
			Name:             person.Name,
			MonthlyIncome:    mathutil.RoundTo(income, fractionDigits),
			PersonalExpenses: mathutil.RoundTo(personal, fractionDigits),
			HouseholdShare:   mathutil.RoundTo(share, fractionDigits),
			Remaining:        mathutil.RoundTo(income-personal-share, fractionDigits),
		})
	}

	return summaries, nil
}

// OneTimeEntries lists the one-time expenses ordered by date. One-time records
// contribute nothing to the recurring monthly view.
func OneTimeEntries(expenses []Expense) []OneTimeEntry {
	var entries []OneTimeEntry
	for _, expense := range expenses {
		if expense.Frequency != FrequencyOneTime {
			continue
		}
		entries = append(entries, OneTimeEntry{
			Date:        expense.Date,
			Description: expense.Description,
			Amount:      expense.Amount,
			Category:    string(expense.Category),
			PersonID:    expense.PersonID,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries
}

// FilterActive pre-filters recurring expenses by their validity window: a
// recurring expense with an EndDate strictly before the evaluation month is
// dropped. The aggregators themselves never inspect dates, so callers apply
// this before summing.
func FilterActive(expenses []Expense, month string) ([]Expense, error) {
	active := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Frequency != FrequencyOneTime && expense.EndDate != "" {
			ended, err := datetime.DateBeforeDate(expense.EndDate, month)
			if err != nil {
				return nil, err
			}
			if ended {
				continue
			}
		}
		active = append(active, expense)
	}
	return active, nil
}
