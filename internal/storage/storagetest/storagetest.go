// Package storagetest provides a behavioural test suite shared by every
// storage.Store implementation.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
	"expenses/internal/storage"
)

// Run exercises a Store. newStore must return an empty store; it is called
// once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("Add assigns ID and CreatedAt", func(t *testing.T) {
		s := newStore(t)
		got, err := s.Add(ctx, newExpense("12.50", "Food & Dining", "", core.NewDate(2024, 6, 1)))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if got.ID <= 0 {
			t.Errorf("expected positive ID, got %d", got.ID)
		}
		if got.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
		if got.Amount.String() != "12.5" || got.Category != "Food & Dining" || got.Date.String() != "2024-06-01" {
			t.Errorf("unexpected expense: %+v", got)
		}
	})

	t.Run("Get returns stored expense", func(t *testing.T) {
		s := newStore(t)
		created, err := s.Add(ctx, newExpense("7.25", "Travel", "train ticket", core.NewDate(2024, 3, 10)))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		got, err := s.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("ID mismatch: got %d, want %d", got.ID, created.ID)
		}
		if !got.Amount.Equal(created.Amount) {
			t.Errorf("Amount mismatch: got %s, want %s", got.Amount, created.Amount)
		}
		if got.Description != "train ticket" {
			t.Errorf("Description mismatch: got %q", got.Description)
		}
		if !got.Date.Equal(created.Date) {
			t.Errorf("Date mismatch: got %s, want %s", got.Date, created.Date)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, created.CreatedAt)
		}
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(ctx, 4242); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List orders by date descending", func(t *testing.T) {
		s := newStore(t)
		for _, d := range []core.Date{core.NewDate(2024, 3, 1), core.NewDate(2024, 1, 15), core.NewDate(2024, 3, 10)} {
			if _, err := s.Add(ctx, newExpense("1", "Other", "", d)); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"2024-03-10", "2024-03-01", "2024-01-15"}
		if len(list) != len(want) {
			t.Fatalf("expected %d expenses, got %d", len(want), len(list))
		}
		for i, w := range want {
			if list[i].Date.String() != w {
				t.Errorf("position %d: got %s, want %s", i, list[i].Date, w)
			}
		}
	})

	t.Run("List breaks date ties by descending ID", func(t *testing.T) {
		s := newStore(t)
		day := core.NewDate(2024, 5, 5)
		var ids []int64
		for i := 0; i < 3; i++ {
			e, err := s.Add(ctx, newExpense("1", "Other", "", day))
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			ids = append(ids, e.ID)
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for i := range list {
			if list[i].ID != ids[len(ids)-1-i] {
				t.Fatalf("unexpected order: %v (inserted %v)", list, ids)
			}
		}
	})

	t.Run("Delete removes expense", func(t *testing.T) {
		s := newStore(t)
		keep, _ := s.Add(ctx, newExpense("1", "Other", "", core.NewDate(2024, 1, 1)))
		drop, _ := s.Add(ctx, newExpense("2", "Other", "", core.NewDate(2024, 1, 2)))

		if err := s.Delete(ctx, drop.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := s.Get(ctx, drop.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != 1 || list[0].ID != keep.ID {
			t.Fatalf("unexpected list after delete: %+v", list)
		}
	})

	t.Run("Delete unknown ID returns ErrNotFound and changes nothing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Add(ctx, newExpense("1", "Other", "", core.NewDate(2024, 1, 1))); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := s.Delete(ctx, 9999); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		list, _ := s.List(ctx)
		if len(list) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(list))
		}
	})

	t.Run("IDs are not reused after delete", func(t *testing.T) {
		s := newStore(t)
		first, _ := s.Add(ctx, newExpense("1", "Other", "", core.NewDate(2024, 1, 1)))
		if err := s.Delete(ctx, first.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		second, err := s.Add(ctx, newExpense("1", "Other", "", core.NewDate(2024, 1, 1)))
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if second.ID <= first.ID {
			t.Fatalf("ID reused or decreased: first=%d second=%d", first.ID, second.ID)
		}
	})

	t.Run("Empty store lists nothing", func(t *testing.T) {
		s := newStore(t)
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %d", len(list))
		}
	})

	t.Run("Concurrent adds are all persisted", func(t *testing.T) {
		s := newStore(t)
		const n = 20
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.Add(ctx, newExpense("1.5", "Other", "", core.NewDate(2024, 2, 2))); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("concurrent Add failed: %v", err)
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != n {
			t.Fatalf("expected %d expenses, got %d", n, len(list))
		}
	})

	t.Run("Ping succeeds on open store", func(t *testing.T) {
		s := newStore(t)
		if err := s.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})
}

func newExpense(amount, category, description string, date core.Date) core.NewExpense {
	return core.NewExpense{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: description,
		Date:        date,
	}
}
