// Package http provides the HTTP server and handler implementations.
//
// This file turns request bodies and path values into domain inputs.

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"expenses/internal/core"
)

var (
	errMalformedBody = errors.New("request body must be a JSON object")
	errBodyTooLarge  = errors.New("request body too large")
)

// expenseRequest is the wire shape of POST /api/expenses. Amount stays raw so
// that both JSON numbers and numeric strings are accepted.
type expenseRequest struct {
	Amount      json.RawMessage `json:"amount"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Date        *string         `json:"date"`
}

// ParseExpenseInput decodes the JSON body of r into an unvalidated input.
// The body is limited to maxBodyBytes.
func ParseExpenseInput(w http.ResponseWriter, r *http.Request) (core.ExpenseInput, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	var req expenseRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return core.ExpenseInput{}, errBodyTooLarge
		}
		return core.ExpenseInput{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	in := core.ExpenseInput{
		Amount:   amountText(req.Amount),
		Category: req.Category,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	return in, nil
}

// amountText extracts the textual amount from a raw JSON value. Missing and
// null become "", strings are unquoted, anything else is passed through for
// the domain parser to accept or reject.
func amountText(raw json.RawMessage) string {
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return ""
	}
	if strings.HasPrefix(v, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return v
}

// ParseExpenseID reads the {id} path value. Only positive integers are IDs.
func ParseExpenseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
