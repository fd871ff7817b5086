// Package sqlite provides a SQLite-backed implementation of the store.Store
// interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/internal/store"
)

// Ensure SQLiteStore implements store.Store
var _ store.Store = (*SQLiteStore)(nil)

// SQLiteStore implements store.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It creates the
// parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SavePerson persists a person and their income records.
func (s *SQLiteStore) SavePerson(ctx context.Context, person *budget.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertPerson(ctx, tx, person); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertPerson(ctx context.Context, tx *sql.Tx, person *budget.Person) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO people (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		person.ID, person.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	// Income entries belong exclusively to their person; rewrite them wholesale.
	if _, err := tx.ExecContext(ctx, "DELETE FROM incomes WHERE person_id = ?", person.ID); err != nil {
		return fmt.Errorf("failed to clear incomes: %w", err)
	}

	for i := range person.Income {
		income := &person.Income[i]
		if income.ID == "" {
			income.ID = uuid.New().String()
		}
		income.PersonID = person.ID

		_, err := tx.ExecContext(ctx,
			"INSERT INTO incomes (id, person_id, label, amount, frequency, position) VALUES (?, ?, ?, ?, ?, ?)",
			income.ID, income.PersonID, income.Label, income.Amount, string(income.Frequency), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert income: %w", err)
		}
	}
	return nil
}

// ListPeople retrieves all people with their income records.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]budget.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM people ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}
	defer rows.Close()

	var people []budget.Person
	for rows.Next() {
		var person budget.Person
		if err := rows.Scan(&person.ID, &person.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	for i := range people {
		incomeRows, err := s.db.QueryContext(ctx,
			"SELECT id, label, amount, frequency FROM incomes WHERE person_id = ? ORDER BY position",
			people[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get incomes: %w", err)
		}

		for incomeRows.Next() {
			income := budget.Income{PersonID: people[i].ID}
			var frequency string
			if err := incomeRows.Scan(&income.ID, &income.Label, &income.Amount, &frequency); err != nil {
				incomeRows.Close()
				return nil, fmt.Errorf("failed to scan income: %w", err)
			}
			income.Frequency = budget.Frequency(frequency)
			people[i].Income = append(people[i].Income, income)
		}
		incomeRows.Close()
		if err := incomeRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate incomes: %w", err)
		}
	}

	return people, nil
}

// DeletePerson removes a person; their incomes cascade.
func (s *SQLiteStore) DeletePerson(ctx context.Context, personID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM people WHERE id = ?", personID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("person not found: %s", personID)
	}
	return nil
}

// SaveExpense persists an expense.
func (s *SQLiteStore) SaveExpense(ctx context.Context, expense *budget.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount, category, person_id, frequency, date, end_date, category_tag)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   description = excluded.description,
		   amount = excluded.amount,
		   category = excluded.category,
		   person_id = excluded.person_id,
		   frequency = excluded.frequency,
		   date = excluded.date,
		   end_date = excluded.end_date,
		   category_tag = excluded.category_tag`,
		expense.ID, expense.Description, expense.Amount, string(expense.Category),
		nullableString(expense.PersonID), string(expense.Frequency),
		expense.Date, expense.EndDate, expense.CategoryTag,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]budget.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, category, person_id, frequency, date, end_date, category_tag
		 FROM expenses ORDER BY date, description`)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []budget.Expense
	for rows.Next() {
		var expense budget.Expense
		var category, frequency string
		var personID sql.NullString
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount, &category,
			&personID, &frequency, &expense.Date, &expense.EndDate, &expense.CategoryTag); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Category = budget.Category(category)
		expense.Frequency = budget.Frequency(frequency)
		if personID.Valid {
			expense.PersonID = personID.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense not found: %s", expenseID)
	}
	return nil
}

// SaveSettings persists the household settings.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings budget.HouseholdSettings) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, distribution_method) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET distribution_method = excluded.distribution_method`,
		string(settings.DistributionMethod),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings retrieves the household settings.
func (s *SQLiteStore) GetSettings(ctx context.Context) (budget.HouseholdSettings, error) {
	settings := budget.HouseholdSettings{DistributionMethod: budget.DistributionEven}
	var method string
	err := s.db.QueryRowContext(ctx, "SELECT distribution_method FROM settings WHERE id = 1").Scan(&method)
	if err == sql.ErrNoRows {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DistributionMethod = budget.DistributionMethod(method)
	return settings, nil
}

// LoadBudget retrieves everything the calculation core consumes.
func (s *SQLiteStore) LoadBudget(ctx context.Context) ([]budget.Person, []budget.Expense, budget.HouseholdSettings, error) {
	people, err := s.ListPeople(ctx)
	if err != nil {
		return nil, nil, budget.HouseholdSettings{}, err
	}
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, nil, budget.HouseholdSettings{}, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, nil, budget.HouseholdSettings{}, err
	}
	return people, expenses, settings, nil
}

// ReplaceAll atomically replaces all stored records.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, people []budget.Person, expenses []budget.Expense, settings budget.HouseholdSettings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"expenses", "incomes", "people"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i := range people {
		person := people[i]
		if person.ID == "" {
			person.ID = uuid.New().String()
		}
		if err := insertPerson(ctx, tx, &person); err != nil {
			return err
		}
	}

	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, description, amount, category, person_id, frequency, date, end_date, category_tag)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			expense.ID, expense.Description, expense.Amount, string(expense.Category),
			nullableString(expense.PersonID), string(expense.Frequency),
			expense.Date, expense.EndDate, expense.CategoryTag,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settings (id, distribution_method) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET distribution_method = excluded.distribution_method`,
		string(settings.DistributionMethod),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
