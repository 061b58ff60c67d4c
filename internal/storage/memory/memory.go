// Package memory provides an in-process storage.Store used for development
// and tests. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"expenses/internal/core"
	"expenses/internal/storage"
)

var _ storage.Store = (*Store)(nil)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]core.Expense
}

func New() *Store {
	return &Store{items: make(map[int64]core.Expense)}
}

// Add stores the expense under a fresh ID.
func (s *Store) Add(_ context.Context, e core.NewExpense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	exp := core.Expense{
		ID:          s.nextID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	s.items[exp.ID] = exp
	return exp, nil
}

// List returns a copy of all expenses ordered by date and ID, both descending.
func (s *Store) List(_ context.Context) ([]core.Expense, error) {
	s.mu.RLock()
	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) Get(_ context.Context, id int64) (core.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, storage.ErrNotFound)
	}
	return e, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("delete expense %d: %w", id, storage.ErrNotFound)
	}
	delete(s.items, id)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
