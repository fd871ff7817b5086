// Package constants provides shared constants for the household-budget application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the average number of days in a year including leap years
	DaysPerYear = 365.25

	// WeeksPerYear is the average number of weeks in a year (365.25 / 7)
	WeeksPerYear = 52.1786

	// DefaultFractionDigits is the default number of fractional digits for a currency
	DefaultFractionDigits = 2

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Payoff simulation constants
const (
	// MaxPayoffMonths bounds the payoff simulation (300 years) so rounding
	// residues can never loop forever
	MaxPayoffMonths = 3600

	// SchedulePreviewMonths is the number of leading schedule entries returned
	// with a payoff result
	SchedulePreviewMonths = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size for
	// YAML configs (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
