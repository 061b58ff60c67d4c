package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expenses/internal/amqp"
	"expenses/internal/core"
	"expenses/internal/storage"
)

// Publisher announces expense changes to other systems.
type Publisher interface {
	PublishExpenseEvent(ctx context.Context, event *amqp.ExpenseEvent) error
}

// ExpenseService orchestrates expense operations across the store and AMQP
type ExpenseService struct {
	store     storage.Store
	publisher Publisher
	now       func() time.Time
}

// NewExpenseService wires a store and an optional publisher. A nil publisher
// disables event publishing.
func NewExpenseService(store storage.Store, publisher Publisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create validates in and persists it. The created event is published only
// after the store has accepted the expense.
func (s *ExpenseService) Create(ctx context.Context, in core.ExpenseInput) (core.Expense, error) {
	candidate, err := in.Validate(core.DateOf(s.now()))
	if err != nil {
		return core.Expense{}, err
	}

	e, err := s.store.Add(ctx, candidate)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"id", e.ID,
		"amount", e.Amount.String(),
		"category", e.Category,
		"date", e.Date.String())

	s.publish(ctx, amqp.NewExpenseCreatedEvent(e))
	return e, nil
}

// List returns every expense, newest date first. The result is never nil.
func (s *ExpenseService) List(ctx context.Context) ([]core.Expense, error) {
	expenses, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (core.Expense, error) {
	return s.store.Get(ctx, id)
}

// Delete removes an expense. Unknown IDs yield storage.ErrNotFound.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)

	s.publish(ctx, amqp.NewExpenseDeletedEvent(id))
	return nil
}

// Ping reports whether the underlying store is reachable.
func (s *ExpenseService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *ExpenseService) publish(ctx context.Context, event *amqp.ExpenseEvent) {
	if s.publisher == nil {
		return
	}
	// Don't fail the request - the change is already stored
	if err := s.publisher.PublishExpenseEvent(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish expense event",
			"type", event.Type,
			"id", event.ID,
			"error", err)
	}
}
