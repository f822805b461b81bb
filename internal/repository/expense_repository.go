package repository

import (
	"context"

	"github.com/spendwise/expense-tracker/internal/domain"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// List returns all expenses in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete removes the expense with the given id. Unknown ids report
// gorm.ErrRecordNotFound so callers can distinguish them from storage faults.
func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
