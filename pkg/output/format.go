// Package output provides utilities for formatting and displaying budget
// results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/internal/payoff"
	"github.com/iwvelando/household-budget/pkg/format"
)

// PrettySummary outputs a human-readable rather than machine-readable table of
// the per-person budget view, followed by one-time records listed by date.
func PrettySummary(summaries []budget.PersonSummary, oneTime []budget.OneTimeEntry, fractionDigits int) {
	p := message.NewPrinter(language.English)
	row := fmt.Sprintf("%%-15s | $%%.%[1]df | $%%.%[1]df | $%%.%[1]df | $%%.%[1]df\n", fractionDigits)
	fmt.Printf("--- Monthly budget ---\n")
	fmt.Printf("Person          | Income        | Personal      | Household     | Remaining\n")
	fmt.Printf("______          | ______        | ________      | _________     | _________\n")
	for _, summary := range summaries {
		_, _ = p.Printf(row,
			summary.Name,
			summary.MonthlyIncome,
			summary.PersonalExpenses,
			summary.HouseholdShare,
			summary.Remaining,
		)
	}

	if len(oneTime) > 0 {
		fmt.Printf("\n--- One-time records ---\n")
		for _, entry := range oneTime {
			fmt.Printf("%s | %s | %s (%s)\n",
				entry.Date, format.Currency(entry.Amount, fractionDigits), entry.Description, entry.Category)
		}
	}
}

// CsvSummary outputs the per-person budget view in comma-separated value format.
func CsvSummary(summaries []budget.PersonSummary, fractionDigits int) {
	fmt.Printf(`"person","monthly income","personal expenses","household share","remaining"`)
	fmt.Printf("\n")
	for _, summary := range summaries {
		fmt.Printf(`"%s","%.*f","%.*f","%.*f","%.*f"`,
			escapeCsv(summary.Name),
			fractionDigits, summary.MonthlyIncome,
			fractionDigits, summary.PersonalExpenses,
			fractionDigits, summary.HouseholdShare,
			fractionDigits, summary.Remaining,
		)
		fmt.Printf("\n")
	}
}

// PrettyPayoff outputs a human-readable payoff simulation result.
func PrettyPayoff(result *payoff.Result, fractionDigits int) {
	fmt.Printf("--- Credit card payoff ---\n")
	fmt.Printf("Balance %s at %.2f%% APR, paying %s/month\n",
		format.Currency(result.Inputs.Balance, fractionDigits),
		result.Inputs.APRPercent,
		format.Currency(result.Inputs.MonthlyPayment, fractionDigits),
	)

	if result.NeverRepaid {
		fmt.Printf("Never repaid: the payment does not exceed the monthly interest charge\n")
		return
	}

	fmt.Printf("Paid off in %d months with %s total interest\n",
		result.Months, format.Currency(result.TotalInterest, fractionDigits))
	if len(result.Schedule) > 0 {
		fmt.Printf("Month | Payment       | Interest      | Principal     | Remaining\n")
		fmt.Printf("_____ | _______       | ________      | _________     | _________\n")
		for _, payment := range result.Schedule {
			fmt.Printf("%5d | %-13s | %-13s | %-13s | %s\n",
				payment.Month,
				format.Currency(payment.Payment, fractionDigits),
				format.Currency(payment.Interest, fractionDigits),
				format.Currency(payment.Principal, fractionDigits),
				format.Currency(payment.Remaining, fractionDigits),
			)
		}
	}
}

// CsvPayoff outputs the payoff schedule preview in comma-separated value format.
func CsvPayoff(result *payoff.Result, fractionDigits int) {
	fmt.Printf(`"month","payment","interest","principal","remaining","never repaid"`)
	fmt.Printf("\n")
	if result.NeverRepaid {
		fmt.Printf(`"","","","","","true"`)
		fmt.Printf("\n")
		return
	}
	for _, payment := range result.Schedule {
		fmt.Printf(`"%d","%.*f","%.*f","%.*f","%.*f","false"`,
			payment.Month,
			fractionDigits, payment.Payment,
			fractionDigits, payment.Interest,
			fractionDigits, payment.Principal,
			fractionDigits, payment.Remaining,
		)
		fmt.Printf("\n")
	}
}

func escapeCsv(value string) string {
	return strings.ReplaceAll(value, `"`, `""`)
}
