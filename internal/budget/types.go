// Package budget implements the financial calculation core: frequency
// normalization, per-person aggregation, household cost distribution, and
// budget summaries. All functions are pure; they never mutate their inputs,
// never inspect the wall clock, and never log.
package budget

// Frequency is the cadence at which an income or expense repeats.
type Frequency string

// Supported cadences.
const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Category classifies an expense as pooled household cost or a cost charged
// entirely to one person.
type Category string

const (
	CategoryHousehold Category = "household"
	CategoryPersonal  Category = "personal"
)

// DistributionMethod selects how pooled household expenses are split across
// people.
type DistributionMethod string

const (
	// DistributionEven divides household cost by headcount.
	DistributionEven DistributionMethod = "even"

	// DistributionIncomeBased divides household cost proportionally to each
	// person's monthly income share.
	DistributionIncomeBased DistributionMethod = "income-based"
)

// Income is a recurring (or one-time) income record owned by exactly one
// person.
type Income struct {
	ID        string
	PersonID  string
	Label     string
	Amount    float64
	Frequency Frequency
}

// Expense is a cost record. A household expense may carry a PersonID as an
// informational tag only; assignment never affects distribution. A personal
// expense must carry a PersonID.
type Expense struct {
	ID          string
	Description string
	Amount      float64
	Category    Category
	PersonID    string
	Frequency   Frequency
	Date        string // YYYY-MM
	EndDate     string // YYYY-MM, only meaningful when Frequency != one-time
	CategoryTag string
}

// Person is a budget member with an ordered list of income records.
type Person struct {
	ID     string
	Name   string
	Income []Income
}

// HouseholdSettings holds the distribution policy for pooled expenses. The
// calculation core consumes it as an explicit parameter and never mutates it.
type HouseholdSettings struct {
	DistributionMethod DistributionMethod
}
