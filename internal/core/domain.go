package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of an expense date.
const DateLayout = "2006-01-02"

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 200

type (
	// Date is a calendar date without a time component. The wrapped time is
	// always midnight UTC so that two equal dates compare equal.
	Date struct {
		time.Time
	}

	// Expense is a persisted spending record.
	Expense struct {
		ID          int64
		Amount      decimal.Decimal
		Category    string
		Description string
		Date        Date
		CreatedAt   time.Time
	}

	// NewExpense is a validated candidate that a store can persist.
	// The store assigns ID and CreatedAt.
	NewExpense struct {
		Amount      decimal.Decimal
		Category    string
		Description string
		Date        Date
	}

	// ExpenseInput is the raw, untrusted shape of an expense coming from a client.
	ExpenseInput struct {
		Amount      string  // textual amount, empty when missing
		Category    *string // nil when missing
		Description string
		Date        string // YYYY-MM-DD, empty means today
	}
)

var (
	ErrMissingAmount   = errors.New("amount is required")
	ErrInvalidAmount   = errors.New("amount must be a decimal number")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrMissingCategory = errors.New("category is required")
	ErrLongDescription = fmt.Errorf("description too long (max %d characters)", MaxDescriptionLength)
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM key used to group expenses by month.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// Equal reports whether both dates name the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

// Validate turns a client input into a persistable expense. today is used
// when the input carries no date.
func (in ExpenseInput) Validate(today Date) (NewExpense, error) {
	amountText := strings.TrimSpace(in.Amount)
	if amountText == "" {
		return NewExpense{}, invalid("amount", ErrMissingAmount)
	}
	amount, err := ParseAmount(amountText)
	if err != nil {
		return NewExpense{}, invalid("amount", err)
	}

	// Any string is a category, blank included; only an absent one is rejected.
	if in.Category == nil {
		return NewExpense{}, invalid("category", ErrMissingCategory)
	}

	description := sanitize(in.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewExpense{}, invalid("description", ErrLongDescription)
	}

	date := today
	if v := strings.TrimSpace(in.Date); v != "" {
		if date, err = ParseDate(v); err != nil {
			return NewExpense{}, invalid("date", err)
		}
	}

	return NewExpense{
		Amount:      amount,
		Category:    *in.Category,
		Description: description,
		Date:        date,
	}, nil
}

// sanitize trims whitespace and drops control characters except tab and newlines.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}

var categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Education",
	"Health & Fitness",
	"Travel",
	"Personal Care",
	"Other",
}

// Categories returns the canonical category labels. Stores accept any
// category string; this list only drives clients.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
