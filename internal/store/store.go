// Package store provides persistent storage for budget records. The
// calculation core never touches storage; callers load records here and pass
// them in as plain values.
package store

import (
	"context"

	"github.com/iwvelando/household-budget/internal/budget"
)

// Store defines the interface for budget record storage. The abstraction
// allows swapping storage backends without changing callers.
type Store interface {
	// SavePerson persists a person and their income records, assigning IDs
	// when absent. An existing person with the same ID is replaced.
	SavePerson(ctx context.Context, person *budget.Person) error

	// ListPeople retrieves all people with their income records, ordered by
	// name.
	ListPeople(ctx context.Context) ([]budget.Person, error)

	// DeletePerson removes a person and their income records.
	DeletePerson(ctx context.Context, personID string) error

	// SaveExpense persists an expense, assigning an ID when absent. An
	// existing expense with the same ID is replaced.
	SaveExpense(ctx context.Context, expense *budget.Expense) error

	// ListExpenses retrieves all expenses ordered by date then description.
	ListExpenses(ctx context.Context) ([]budget.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// SaveSettings persists the household settings.
	SaveSettings(ctx context.Context, settings budget.HouseholdSettings) error

	// GetSettings retrieves the household settings, defaulting to even
	// distribution when none have been saved.
	GetSettings(ctx context.Context) (budget.HouseholdSettings, error)

	// LoadBudget retrieves everything the calculation core consumes in one
	// call.
	LoadBudget(ctx context.Context) ([]budget.Person, []budget.Expense, budget.HouseholdSettings, error)

	// ReplaceAll atomically replaces all stored records, used when importing
	// a configuration file.
	ReplaceAll(ctx context.Context, people []budget.Person, expenses []budget.Expense, settings budget.HouseholdSettings) error

	// Close releases any resources held by the store.
	Close() error
}
