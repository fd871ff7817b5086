package budget

// PersonIncome sums a person's income records normalized to the monthly
// cadence. An empty income list yields 0.
func PersonIncome(person Person) (float64, error) {
	total := 0.0
	for _, income := range person.Income {
		monthly, err := MonthlyAmount(income.Amount, income.Frequency)
		if err != nil {
			return 0, err
		}
		total += monthly
	}
	return total, nil
}

// PersonalExpenses sums the monthly-normalized amounts of the personal
// expenses directly assigned to the given person. Date-bounding is a caller
// concern; this sums unconditionally over the set it is given.
func PersonalExpenses(expenses []Expense, personID string) (float64, error) {
	total := 0.0
	for _, expense := range expenses {
		if expense.Category != CategoryPersonal || expense.PersonID != personID {
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
