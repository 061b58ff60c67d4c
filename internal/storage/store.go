// Package storage defines the persistence boundary for expenses.
package storage

import (
	"context"
	"errors"

	"expenses/internal/core"
)

// ErrNotFound is returned (wrapped) when no expense has the requested ID.
var ErrNotFound = errors.New("expense not found")

// Store persists expenses. Implementations must be safe for concurrent use
// and commit every mutation before returning.
type Store interface {
	// Add persists a validated expense, assigning ID and CreatedAt.
	Add(ctx context.Context, e core.NewExpense) (core.Expense, error)

	// List returns every expense, most recent date first. Expenses sharing a
	// date are ordered by descending ID.
	List(ctx context.Context) ([]core.Expense, error)

	// Get returns the expense with the given ID or ErrNotFound.
	Get(ctx context.Context, id int64) (core.Expense, error)

	// Delete removes the expense with the given ID or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
