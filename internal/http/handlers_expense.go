package http

import (
	"errors"
	"net/http"

	"expenses/internal/core"
	applog "expenses/internal/log"
	"expenses/internal/storage"
)

const msgExpenseNotFound = "expense not found"

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	expenses, err := s.expenses.List(ctx)
	if err != nil {
		applog.LogError(ctx, "Failed to list expenses", err, applog.ComponentExpense, applog.OpList)
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	writeJSON(w, http.StatusOK, NewExpenseListResponse(expenses))
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := ParseExpenseInput(w, r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		applog.FromContext(ctx).WarnContext(ctx, "Rejected expense body", "error", err)
		writeError(w, status, err.Error())
		return
	}

	e, err := s.expenses.Create(ctx, in)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			applog.FromContext(ctx).InfoContext(ctx, "Expense validation failed",
				applog.FieldOperation, applog.OpValidate,
				"field", verr.Field,
				applog.FieldError, verr.Err)
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		applog.LogError(ctx, "Failed to create expense", err, applog.ComponentExpense, applog.OpCreate)
		writeError(w, http.StatusInternalServerError, "failed to save expense")
		return
	}

	if s.metrics != nil {
		s.metrics.ExpenseCreated()
	}
	writeJSON(w, http.StatusCreated, NewExpenseResponse(e))
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := ParseExpenseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgExpenseNotFound)
		return
	}

	e, err := s.expenses.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgExpenseNotFound)
		return
	}
	if err != nil {
		applog.LogError(ctx, "Failed to load expense", err, applog.ComponentExpense, applog.OpRead)
		writeError(w, http.StatusInternalServerError, "failed to load expense")
		return
	}

	writeJSON(w, http.StatusOK, NewExpenseResponse(e))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := ParseExpenseID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgExpenseNotFound)
		return
	}

	err := s.expenses.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgExpenseNotFound)
		return
	}
	if err != nil {
		applog.LogError(ctx, "Failed to delete expense", err, applog.ComponentExpense, applog.OpDelete)
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	if s.metrics != nil {
		s.metrics.ExpenseDeleted()
	}
	writeMessage(w, http.StatusOK, "Expense deleted successfully")
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.Categories())
}
