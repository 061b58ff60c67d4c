package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-06-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-6-1", false},
		{"01/06/2024", false},
		{"2024-06-01T10:00:00Z", false},
		{"", false},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if d.String() != tc.in {
				t.Fatalf("%q round-tripped to %q", tc.in, d.String())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2024, 6, 1, 23, 59, 0, 0, loc)
	if got := DateOf(late); !got.Equal(NewDate(2024, 6, 1)) {
		t.Fatalf("DateOf(%v) = %s, want 2024-06-01", late, got)
	}
	if got := NewDate(2024, 6, 1).MonthKey(); got != "2024-06" {
		t.Fatalf("MonthKey = %q", got)
	}
}

func TestExpenseInputValidate(t *testing.T) {
	today := NewDate(2024, 6, 15)

	good := ExpenseInput{Amount: "12.50", Category: strPtr("Food & Dining"), Date: "2024-06-01"}
	e, err := good.Validate(today)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.Amount.String() != "12.5" || e.Category != "Food & Dining" || e.Date.String() != "2024-06-01" {
		t.Fatalf("unexpected expense: %+v", e)
	}
	if e.Description != "" {
		t.Fatalf("expected empty description, got %q", e.Description)
	}

	noDate := ExpenseInput{Amount: "3", Category: strPtr("Other"), Description: " coffee\x00 "}
	e, err = noDate.Validate(today)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !e.Date.Equal(today) {
		t.Fatalf("expected default date %s, got %s", today, e.Date)
	}
	if e.Description != "coffee" {
		t.Fatalf("expected sanitized description, got %q", e.Description)
	}

	for _, cat := range []string{"Pets", "", "  "} {
		in := ExpenseInput{Amount: "1", Category: strPtr(cat)}
		e, err := in.Validate(today)
		if err != nil {
			t.Fatalf("category %q must be accepted, got %v", cat, err)
		}
		if e.Category != cat {
			t.Fatalf("category stored as %q, want %q", e.Category, cat)
		}
	}

	maxDesc := ExpenseInput{Amount: "1", Category: strPtr("Other"), Description: strings.Repeat("é", MaxDescriptionLength)}
	if _, err := maxDesc.Validate(today); err != nil {
		t.Fatalf("description of %d characters must be accepted, got %v", MaxDescriptionLength, err)
	}

	bads := []struct {
		in    ExpenseInput
		field string
		err   error
	}{
		{ExpenseInput{Category: strPtr("Other")}, "amount", ErrMissingAmount},
		{ExpenseInput{Amount: "x", Category: strPtr("Other")}, "amount", ErrInvalidAmount},
		{ExpenseInput{Amount: "-5", Category: strPtr("Other")}, "amount", ErrNegativeAmount},
		{ExpenseInput{Amount: "5"}, "category", ErrMissingCategory},
		{ExpenseInput{Amount: "1e40", Category: strPtr("Other")}, "amount", ErrAmountOutOfRange},
		{ExpenseInput{Amount: "5", Category: strPtr("Other"), Description: strings.Repeat("x", MaxDescriptionLength+1)}, "description", ErrLongDescription},
		{ExpenseInput{Amount: "5", Category: strPtr("Other"), Date: "June 1"}, "date", ErrInvalidDate},
	}
	for i, tc := range bads {
		_, err := tc.in.Validate(today)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d expected ValidationError, got %v", i, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("case %d expected field %q, got %q", i, tc.field, verr.Field)
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("case %d expected %v, got %v", i, tc.err, err)
		}
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(cats))
	}
	cats[0] = "mutated"
	if Categories()[0] != "Food & Dining" {
		t.Fatalf("Categories must return a copy")
	}
}
