package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/spendwise/expense-tracker/internal/service"
	"go.uber.org/zap"
)

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListExpenses godoc
// @Summary List expenses
// @Description Get all expenses in insertion order
// @Tags Expenses
// @Produce json
// @Success 200 {array} domain.ExpenseDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list expenses", zap.Error(err))
		respondStorageError(w, "Error fetching expenses", err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

// CreateExpense godoc
// @Summary Create expense
// @Description Create a new expense. All four fields are required.
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body domain.CreateExpenseRequest true "Expense data"
// @Success 201 {object} domain.ExpenseDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	expense, err := h.expenseService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create expense", zap.Error(err))
		respondStorageError(w, "Error adding expense", err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense godoc
// @Summary Update expense
// @Description Partially update an existing expense. Fields absent from the body are left unchanged.
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body domain.UpdateExpenseRequest true "Expense fields"
// @Success 200 {object} domain.ExpenseDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExpenseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	expense, err := h.expenseService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.Error("failed to update expense", zap.Error(err), zap.Uint("expense_id", id))
		respondStorageError(w, "Error updating expense", err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// DeleteExpense godoc
// @Summary Delete expense
// @Description Delete an expense by ID
// @Tags Expenses
// @Param id path int true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExpenseID(w, r)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.Error("failed to delete expense", zap.Error(err), zap.Uint("expense_id", id))
		respondStorageError(w, "Error deleting expense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseExpenseID extracts the id route parameter. A non-numeric id cannot
// match any record, so it is reported as not found rather than a bad request.
func parseExpenseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Expense not found")
		return 0, false
	}
	return uint(id), true
}
