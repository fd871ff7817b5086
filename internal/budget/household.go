package budget

import "fmt"

// HouseholdExpensesTotal sums the monthly-normalized amounts of all household
// expenses. Household expenses are pooled; any PersonID tag on them is
// informational only and ignored here.
func HouseholdExpensesTotal(expenses []Expense) (float64, error) {
	total := 0.0
	for _, expense := range expenses {
		if expense.Category != CategoryHousehold {
			continue
		}
		monthly, err := MonthlyAmount(expense.Amount, expense.Frequency)
		if err != nil {
			return 0, err
		}
		total += monthly
	}
	return total, nil
}

// HouseholdShare computes one person's share of the pooled monthly household
// total under the given distribution method.
//
// Even split divides by headcount; an empty people list yields 0 (no one to
// bill), which is a defined degenerate case rather than an error. Income-based
// split is proportional to the person's share of total monthly income and
// falls back to the even split when the income denominator is 0, so a
// household of students never divides by zero.
func HouseholdShare(totalHouseholdMonthly float64, people []Person, method DistributionMethod, personID string) (float64, error) {
	if len(people) == 0 {
		return 0, nil
	}

	evenShare := totalHouseholdMonthly / float64(len(people))

	switch method {
	case DistributionEven:
		return evenShare, nil
	case DistributionIncomeBased:
		totalIncome := 0.0
		personIncome := 0.0
		for _, person := range people {
			income, err := PersonIncome(person)
			if err != nil {
				return 0, err
			}
			totalIncome += income
			if person.ID == personID {
				personIncome = income
			}
		}
		if totalIncome == 0 {
			return evenShare, nil
		}
		return (personIncome / totalIncome) * totalHouseholdMonthly, nil
	default:
		return 0, fmt.Errorf("unsupported distribution method %q", method)
	}
}
