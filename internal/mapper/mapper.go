package mapper

import (
	"time"

	"github.com/spendwise/expense-tracker/internal/domain"
)

// ToExpenseDTO converts Expense to ExpenseDTO
func ToExpenseDTO(expense *domain.Expense) domain.ExpenseDTO {
	return domain.ExpenseDTO{
		ID:        expense.ID,
		Name:      expense.Name,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: expense.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToExpenseDTOs converts a slice of Expenses, preserving order
func ToExpenseDTOs(expenses []domain.Expense) []domain.ExpenseDTO {
	dtos := make([]domain.ExpenseDTO, len(expenses))
	for i := range expenses {
		dtos[i] = ToExpenseDTO(&expenses[i])
	}
	return dtos
}
