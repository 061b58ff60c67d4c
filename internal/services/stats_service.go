package services

import (
	"context"
	"fmt"
	"time"

	"expenses/internal/core"
	"expenses/internal/storage"
)

// StatsService derives summary statistics from the store contents.
type StatsService struct {
	store storage.Store
	now   func() time.Time
}

func NewStatsService(store storage.Store) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// Statistics aggregates one snapshot of all expenses, so every figure in the
// result describes the same set of records.
func (s *StatsService) Statistics(ctx context.Context) (core.Statistics, error) {
	expenses, err := s.store.List(ctx)
	if err != nil {
		return core.Statistics{}, fmt.Errorf("load expenses for statistics: %w", err)
	}
	return core.ComputeStatistics(expenses, core.DateOf(s.now())), nil
}
