package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/spendwise/expense-tracker/internal/mapper"
	"github.com/spendwise/expense-tracker/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, req *domain.CreateExpenseRequest) (*domain.ExpenseDTO, error) {
	expense := &domain.Expense{
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     *req.Date,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	dto := mapper.ToExpenseDTO(expense)
	return &dto, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, id uint) (*domain.ExpenseDTO, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	dto := mapper.ToExpenseDTO(expense)
	return &dto, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]domain.ExpenseDTO, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return mapper.ToExpenseDTOs(expenses), nil
}

// Update applies a partial update: only fields present in the request replace
// the stored values, the rest of the record is untouched.
func (s *ExpenseService) Update(ctx context.Context, id uint, req *domain.UpdateExpenseRequest) (*domain.ExpenseDTO, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	dto := mapper.ToExpenseDTO(expense)
	return &dto, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
