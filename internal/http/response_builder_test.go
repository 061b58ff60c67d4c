package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
)

func TestNewExpenseResponse(t *testing.T) {
	e := core.Expense{
		ID:          3,
		Amount:      decimal.RequireFromString("12.50"),
		Category:    "Food & Dining",
		Description: "lunch",
		Date:        core.NewDate(2024, 6, 1),
		CreatedAt:   time.Date(2024, 6, 1, 10, 30, 0, 123456000, time.UTC),
	}

	raw, err := json.Marshal(NewExpenseResponse(e))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// encoding/json escapes & as \u0026
	want := `{"id":3,"amount":12.5,"category":"Food \u0026 Dining","description":"lunch","date":"2024-06-01","created_at":"2024-06-01T10:30:00.123456Z"}`
	if string(raw) != want {
		t.Errorf("got  %s\nwant %s", raw, want)
	}
}

func TestNewExpenseListResponse_Empty(t *testing.T) {
	raw, err := json.Marshal(NewExpenseListResponse(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected [], got %s", raw)
	}
}

func TestNewStatisticsResponse(t *testing.T) {
	stats := core.ComputeStatistics([]core.Expense{
		{Amount: decimal.RequireFromString("0.1"), Category: "Other", Date: core.NewDate(2024, 6, 1)},
		{Amount: decimal.RequireFromString("0.2"), Category: "Other", Date: core.NewDate(2024, 6, 1)},
	}, core.NewDate(2024, 6, 1))

	raw, err := json.Marshal(NewStatisticsResponse(stats))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	// Exact decimal sums, not 0.30000000000000004
	if string(got["total_expenses"]) != "0.3" {
		t.Errorf("total_expenses = %s, want 0.3", got["total_expenses"])
	}
	if string(got["category_totals"]) != `{"Other":0.3}` {
		t.Errorf("category_totals = %s", got["category_totals"])
	}
	if string(got["monthly_expenses"]) != `{"2024-06":0.3}` {
		t.Errorf("monthly_expenses = %s", got["monthly_expenses"])
	}
	if string(got["total_count"]) != "2" {
		t.Errorf("total_count = %s", got["total_count"])
	}
}

func TestNewStatisticsResponse_EmptyMapsEncodeAsObjects(t *testing.T) {
	raw, err := json.Marshal(NewStatisticsResponse(core.ComputeStatistics(nil, core.NewDate(2024, 1, 1))))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, want := range []string{`"category_totals":{}`, `"monthly_expenses":{}`, `"total_expenses":0`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("expected %s in %s", want, raw)
		}
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusNotFound, "expense not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"error":"expense not found"}` {
		t.Errorf("body = %s", body)
	}
}
