// Package config defines the data structures related to configuration and
// includes functions for loading, validating, and converting the config into
// the records the calculation core consumes.
package config

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/pkg/constants"
)

// Configuration holds all configuration for household-budget.
type Configuration struct {
	Currency  CurrencyConfig  `yaml:"currency,omitempty"`
	Household HouseholdConfig `yaml:"household"`
	People    []PersonConfig  `yaml:"people"`
	Expenses  []ExpenseConfig `yaml:"expenses"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Server    ServerConfig    `yaml:"server,omitempty"`
	Database  DatabaseConfig  `yaml:"database,omitempty"`
}

// CurrencyConfig selects the currency the budget is denominated in. The core
// only ever consumes FractionDigits; symbol and locale work stay with callers.
type CurrencyConfig struct {
	Code           string `yaml:"code,omitempty"`
	FractionDigits int    `yaml:"fractionDigits,omitempty"`
}

// HouseholdConfig holds the distribution policy for pooled expenses.
type HouseholdConfig struct {
	DistributionMethod string `yaml:"distributionMethod"`
}

// PersonConfig describes one budget member and their income records.
type PersonConfig struct {
	Name   string         `yaml:"name"`
	Income []IncomeConfig `yaml:"income,omitempty"`
}

// IncomeConfig describes one income record.
type IncomeConfig struct {
	Label     string  `yaml:"label"`
	Amount    float64 `yaml:"amount"`
	Frequency string  `yaml:"frequency"`
}

// ExpenseConfig describes one expense record. Person refers to a configured
// person by name; it is required for personal expenses and an informational
// tag for household ones.
type ExpenseConfig struct {
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
	Category    string  `yaml:"category"`
	Person      string  `yaml:"person,omitempty"`
	Frequency   string  `yaml:"frequency"`
	Date        string  `yaml:"date,omitempty"`
	EndDate     string  `yaml:"endDate,omitempty"`
	Tag         string  `yaml:"tag,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds HTTP API configuration options.
type ServerConfig struct {
	Address             string `yaml:"address,omitempty"`
	MaxRequestSizeBytes int64  `yaml:"maxRequestSizeBytes,omitempty"`
}

// DatabaseConfig holds the SQLite persistence options.
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// ParseConfiguration decodes a YAML document provided as raw bytes, e.g. an
// HTTP request body, into a Configuration.
func ParseConfiguration(data []byte) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Currency.Code == "" {
		c.Currency.Code = "USD"
		c.Currency.FractionDigits = constants.DefaultFractionDigits
	}
	if c.Household.DistributionMethod == "" {
		c.Household.DistributionMethod = string(budget.DistributionEven)
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.MaxRequestSizeBytes <= 0 {
		c.Server.MaxRequestSizeBytes = constants.DefaultMaxRequestSizeBytes
	}
}

// BudgetRecords converts the configuration into the value objects the
// calculation core consumes, assigning fresh IDs and resolving person names
// on expenses. A personal expense naming no person, or naming an unknown one,
// is a hard error; a household expense tag that cannot be resolved is left
// unassigned (assignment never affects distribution).
func (c *Configuration) BudgetRecords() ([]budget.Person, []budget.Expense, budget.HouseholdSettings, error) {
	settings := budget.HouseholdSettings{
		DistributionMethod: budget.DistributionMethod(c.Household.DistributionMethod),
	}

	idsByName := make(map[string]string, len(c.People))
	people := make([]budget.Person, 0, len(c.People))
	for _, personConfig := range c.People {
		person := budget.Person{
			ID:   uuid.New().String(),
			Name: personConfig.Name,
		}
		if _, exists := idsByName[personConfig.Name]; exists {
			return nil, nil, settings, fmt.Errorf("duplicate person name %q", personConfig.Name)
		}
		idsByName[personConfig.Name] = person.ID

		for _, incomeConfig := range personConfig.Income {
			person.Income = append(person.Income, budget.Income{
				ID:        uuid.New().String(),
				PersonID:  person.ID,
				Label:     incomeConfig.Label,
				Amount:    incomeConfig.Amount,
				Frequency: budget.Frequency(incomeConfig.Frequency),
			})
		}
		people = append(people, person)
	}

	expenses := make([]budget.Expense, 0, len(c.Expenses))
	for _, expenseConfig := range c.Expenses {
		expense := budget.Expense{
			ID:          uuid.New().String(),
			Description: expenseConfig.Description,
			Amount:      expenseConfig.Amount,
			Category:    budget.Category(expenseConfig.Category),
			Frequency:   budget.Frequency(expenseConfig.Frequency),
			Date:        expenseConfig.Date,
			EndDate:     expenseConfig.EndDate,
			CategoryTag: expenseConfig.Tag,
		}

		if expenseConfig.Person != "" {
			personID, known := idsByName[expenseConfig.Person]
			if known {
				expense.PersonID = personID
			} else if expense.Category == budget.CategoryPersonal {
				return nil, nil, settings, fmt.Errorf("expense %q references unknown person %q",
					expenseConfig.Description, expenseConfig.Person)
			}
		} else if expense.Category == budget.CategoryPersonal {
			return nil, nil, settings, fmt.Errorf("personal expense %q must name a person",
				expenseConfig.Description)
		}

		expenses = append(expenses, expense)
	}

	return people, expenses, settings, nil
}
