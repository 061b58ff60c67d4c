// Package http provides the HTTP server and handler implementations.
//
// This file holds the JSON wire documents and the helpers that write them.

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
)

// ExpenseResponse is the JSON form of an expense. Amounts are written as
// exact decimal number literals.
type ExpenseResponse struct {
	ID          int64       `json:"id"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	CreatedAt   string      `json:"created_at"`
}

// StatisticsResponse is the document served by GET /api/statistics.
type StatisticsResponse struct {
	TotalExpenses     json.Number            `json:"total_expenses"`
	CategoryTotals    map[string]json.Number `json:"category_totals"`
	MonthlyExpenses   map[string]json.Number `json:"monthly_expenses"`
	TodayExpenses     json.Number            `json:"today_expenses"`
	ThisMonthExpenses json.Number            `json:"this_month_expenses"`
	TotalCount        int                    `json:"total_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func numbers(m map[string]decimal.Decimal) map[string]json.Number {
	out := make(map[string]json.Number, len(m))
	for k, v := range m {
		out[k] = number(v)
	}
	return out
}

// NewExpenseResponse converts a domain expense to its JSON form.
func NewExpenseResponse(e core.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      number(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.String(),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// NewExpenseListResponse converts expenses preserving their order. The result
// is never nil so an empty store encodes as [].
func NewExpenseListResponse(expenses []core.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}

func NewStatisticsResponse(s core.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalExpenses:     number(s.TotalExpenses),
		CategoryTotals:    numbers(s.CategoryTotals),
		MonthlyExpenses:   numbers(s.MonthlyExpenses),
		TodayExpenses:     number(s.TodayExpenses),
		ThisMonthExpenses: number(s.ThisMonthExpenses),
		TotalCount:        s.TotalCount,
	}
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err, "status", status)
	}
}

// writeError writes the {"error": msg} document used by every failure.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
