// Package postgres provides a PostgreSQL-backed implementation of storage.Store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"expenses/internal/core"
	"expenses/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping checks that a connection can be acquired.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Add inserts a new expense.
func (s *Store) Add(ctx context.Context, e core.NewExpense) (core.Expense, error) {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO expenses (amount, category, description, date, created_at)
		 VALUES ($1::numeric, $2, $3, $4, $5) RETURNING id`,
		e.Amount.String(), e.Category, e.Description, e.Date.Time, createdAt,
	).Scan(&id)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	slog.DebugContext(ctx, "Expense saved to Postgres",
		"id", id,
		"amount", e.Amount.String(),
		"category", e.Category,
		"date", e.Date.String())

	return core.Expense{
		ID:          id,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   createdAt,
	}, nil
}

// List returns all expenses, newest date first.
func (s *Store) List(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, amount::text, category, description, date, created_at
		 FROM expenses ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// Get retrieves a single expense by ID.
func (s *Store) Get(ctx context.Context, id int64) (core.Expense, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, amount::text, category, description, date, created_at
		 FROM expenses WHERE id = $1`,
		id,
	)
	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, err
	}
	return e, nil
}

// Delete removes an expense by ID.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete expense %d: %w", id, storage.ErrNotFound)
	}

	slog.DebugContext(ctx, "Expense deleted from Postgres", "id", id)
	return nil
}

func scanExpense(row pgx.Row) (core.Expense, error) {
	var (
		e         core.Expense
		amount    string
		date      time.Time
		createdAt time.Time
	)
	if err := row.Scan(&e.ID, &amount, &e.Category, &e.Description, &date, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.Expense{}, err
		}
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}

	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return core.Expense{}, fmt.Errorf("parse amount of expense %d: %w", e.ID, err)
	}
	e.Date = core.DateOf(date)
	e.CreatedAt = createdAt.UTC()

	return e, nil
}
