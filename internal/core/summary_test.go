package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func exp(amount, category string, date Date) Expense {
	return Expense{Amount: decimal.RequireFromString(amount), Category: category, Date: date}
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil, NewDate(2024, 6, 1))
	if !stats.TotalExpenses.IsZero() || !stats.TodayExpenses.IsZero() || !stats.ThisMonthExpenses.IsZero() {
		t.Fatalf("expected zero sums, got %+v", stats)
	}
	if stats.TotalCount != 0 || len(stats.CategoryTotals) != 0 || len(stats.MonthlyExpenses) != 0 {
		t.Fatalf("expected empty aggregates, got %+v", stats)
	}
}

func TestComputeStatistics(t *testing.T) {
	today := NewDate(2024, 6, 15)
	expenses := []Expense{
		exp("12.50", "Food & Dining", NewDate(2024, 6, 15)),
		exp("0.10", "Food & Dining", NewDate(2024, 6, 1)),
		exp("0.20", "Travel", NewDate(2024, 5, 31)),
		exp("100", "Bills & Utilities", NewDate(2023, 6, 15)),
	}

	stats := ComputeStatistics(expenses, today)

	if stats.TotalCount != 4 {
		t.Fatalf("TotalCount = %d", stats.TotalCount)
	}
	if got := stats.TotalExpenses.String(); got != "112.8" {
		t.Fatalf("TotalExpenses = %s", got)
	}
	if got := stats.TodayExpenses.String(); got != "12.5" {
		t.Fatalf("TodayExpenses = %s", got)
	}
	if got := stats.ThisMonthExpenses.String(); got != "12.6" {
		t.Fatalf("ThisMonthExpenses = %s", got)
	}

	wantCategories := map[string]string{"Food & Dining": "12.6", "Travel": "0.2", "Bills & Utilities": "100"}
	if len(stats.CategoryTotals) != len(wantCategories) {
		t.Fatalf("CategoryTotals = %v", stats.CategoryTotals)
	}
	for k, v := range wantCategories {
		if stats.CategoryTotals[k].String() != v {
			t.Fatalf("CategoryTotals[%q] = %s, want %s", k, stats.CategoryTotals[k], v)
		}
	}

	wantMonths := map[string]string{"2024-06": "12.6", "2024-05": "0.2", "2023-06": "100"}
	if len(stats.MonthlyExpenses) != len(wantMonths) {
		t.Fatalf("MonthlyExpenses = %v", stats.MonthlyExpenses)
	}
	for k, v := range wantMonths {
		if stats.MonthlyExpenses[k].String() != v {
			t.Fatalf("MonthlyExpenses[%q] = %s, want %s", k, stats.MonthlyExpenses[k], v)
		}
	}
}

func TestComputeStatisticsSumsAgree(t *testing.T) {
	expenses := []Expense{
		exp("1.1", "A", NewDate(2024, 1, 1)),
		exp("2.2", "B", NewDate(2024, 2, 1)),
		exp("3.3", "A", NewDate(2024, 3, 1)),
		exp("0", "C", NewDate(2024, 3, 2)),
	}
	stats := ComputeStatistics(expenses, NewDate(2025, 1, 1))

	byCategory := decimal.Zero
	for _, v := range stats.CategoryTotals {
		byCategory = byCategory.Add(v)
	}
	byMonth := decimal.Zero
	for _, v := range stats.MonthlyExpenses {
		byMonth = byMonth.Add(v)
	}
	if !byCategory.Equal(stats.TotalExpenses) || !byMonth.Equal(stats.TotalExpenses) {
		t.Fatalf("category sum %s and month sum %s must equal total %s", byCategory, byMonth, stats.TotalExpenses)
	}
	if !stats.ThisMonthExpenses.IsZero() {
		t.Fatalf("expected zero for a month without expenses, got %s", stats.ThisMonthExpenses)
	}
}
