package core

import "github.com/shopspring/decimal"

// Statistics is the set of aggregates derived from one snapshot of expenses.
type Statistics struct {
	TotalExpenses     decimal.Decimal
	CategoryTotals    map[string]decimal.Decimal // only categories with at least one expense
	MonthlyExpenses   map[string]decimal.Decimal // keyed by YYYY-MM
	TodayExpenses     decimal.Decimal
	ThisMonthExpenses decimal.Decimal
	TotalCount        int
}

// ComputeStatistics aggregates expenses. today decides which records count
// towards TodayExpenses and which month key is ThisMonthExpenses.
func ComputeStatistics(expenses []Expense, today Date) Statistics {
	stats := Statistics{
		TotalExpenses:     decimal.Zero,
		CategoryTotals:    make(map[string]decimal.Decimal),
		MonthlyExpenses:   make(map[string]decimal.Decimal),
		TodayExpenses:     decimal.Zero,
		ThisMonthExpenses: decimal.Zero,
		TotalCount:        len(expenses),
	}

	for _, e := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(e.Amount)
		stats.CategoryTotals[e.Category] = stats.CategoryTotals[e.Category].Add(e.Amount)

		key := e.Date.MonthKey()
		stats.MonthlyExpenses[key] = stats.MonthlyExpenses[key].Add(e.Amount)

		if e.Date.Equal(today) {
			stats.TodayExpenses = stats.TodayExpenses.Add(e.Amount)
		}
	}

	if v, ok := stats.MonthlyExpenses[today.MonthKey()]; ok {
		stats.ThisMonthExpenses = v
	}

	return stats
}
