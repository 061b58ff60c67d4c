package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseExpenseInput(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount string
		wantCat    *string
		wantDesc   string
		wantDate   string
		wantErr    error
	}{
		{
			name:       "number amount",
			body:       `{"amount": 12.50, "category": "Food & Dining", "date": "2024-06-01"}`,
			wantAmount: "12.50",
			wantCat:    strPtr("Food & Dining"),
			wantDate:   "2024-06-01",
		},
		{
			name:       "string amount and description",
			body:       `{"amount": "7,25", "category": "Travel", "description": "bus"}`,
			wantAmount: "7,25",
			wantCat:    strPtr("Travel"),
			wantDesc:   "bus",
		},
		{
			name:    "null amount and description",
			body:    `{"amount": null, "category": "Other", "description": null}`,
			wantCat: strPtr("Other"),
		},
		{
			name:       "non-numeric amount passes through",
			body:       `{"amount": true}`,
			wantAmount: "true",
		},
		{
			name: "missing everything",
			body: `{}`,
		},
		{
			name:    "not json",
			body:    `amount=12`,
			wantErr: errMalformedBody,
		},
		{
			name:    "array body",
			body:    `[1, 2]`,
			wantErr: errMalformedBody,
		},
		{
			name:    "category of wrong type",
			body:    `{"amount": 1, "category": 5}`,
			wantErr: errMalformedBody,
		},
		{
			name:    "body over limit",
			body:    `{"description": "` + strings.Repeat("x", maxBodyBytes) + `"}`,
			wantErr: errBodyTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(tt.body))
			in, err := ParseExpenseInput(httptest.NewRecorder(), req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.Amount != tt.wantAmount {
				t.Errorf("Amount = %q, want %q", in.Amount, tt.wantAmount)
			}
			if (in.Category == nil) != (tt.wantCat == nil) || (in.Category != nil && *in.Category != *tt.wantCat) {
				t.Errorf("Category = %v, want %v", in.Category, tt.wantCat)
			}
			if in.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", in.Description, tt.wantDesc)
			}
			if in.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", in.Date, tt.wantDate)
			}
		})
	}
}

func TestParseExpenseID(t *testing.T) {
	tests := []struct {
		value  string
		want   int64
		wantOK bool
	}{
		{value: "42", want: 42, wantOK: true},
		{value: "0", wantOK: false},
		{value: "-3", wantOK: false},
		{value: "abc", wantOK: false},
		{value: "1.5", wantOK: false},
		{value: "99999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/expenses/x", nil)
			req.SetPathValue("id", tt.value)

			got, ok := ParseExpenseID(req)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseExpenseID(%q) = %d, %v; want %d, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
