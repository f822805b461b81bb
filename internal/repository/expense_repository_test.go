package repository_test

import (
	"context"
	"testing"

	"github.com/spendwise/expense-tracker/internal/database"
	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/spendwise/expense-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupExpenseTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestExpense(name string, amount float64) *domain.Expense {
	return &domain.Expense{
		Name:     name,
		Amount:   amount,
		Category: "Food",
		Date:     mustDate("2026-08-01"),
	}
}

func mustDate(s string) domain.DateOnly {
	date, err := domain.ParseDateOnly(s)
	if err != nil {
		panic(err)
	}
	return date
}

func TestExpenseRepository_Create(t *testing.T) {
	db := setupExpenseTestDB(t)
	repo := repository.NewExpenseRepository(db)

	expense := newTestExpense("Groceries", 42.50)
	err := repo.Create(context.Background(), expense)
	assert.NoError(t, err)
	assert.NotZero(t, expense.ID)
	assert.False(t, expense.CreatedAt.IsZero())
}

func TestExpenseRepository_GetByID(t *testing.T) {
	db := setupExpenseTestDB(t)
	repo := repository.NewExpenseRepository(db)

	expense := newTestExpense("Bus ticket", 3.20)
	expense.Category = "Transport"
	require.NoError(t, repo.Create(context.Background(), expense))

	found, err := repo.GetByID(context.Background(), expense.ID)
	assert.NoError(t, err)
	assert.Equal(t, expense.Name, found.Name)
	assert.Equal(t, expense.Amount, found.Amount)
	assert.Equal(t, expense.Category, found.Category)
	assert.Equal(t, expense.Date.String(), found.Date.String())

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), 9999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestExpenseRepository_List(t *testing.T) {
	db := setupExpenseTestDB(t)
	repo := repository.NewExpenseRepository(db)

	t.Run("empty", func(t *testing.T) {
		expenses, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, expenses)
	})

	first := newTestExpense("Rent", 900)
	second := newTestExpense("Electricity", 55.80)
	second.Category = "Utilities"
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), second))

	expenses, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Name)
	assert.Equal(t, "Electricity", expenses[1].Name)
}

func TestExpenseRepository_Update(t *testing.T) {
	db := setupExpenseTestDB(t)
	repo := repository.NewExpenseRepository(db)

	expense := newTestExpense("Coffee", 4.50)
	require.NoError(t, repo.Create(context.Background(), expense))

	expense.Amount = 5.00
	expense.Name = "Coffee and cake"
	require.NoError(t, repo.Update(context.Background(), expense))

	found, err := repo.GetByID(context.Background(), expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee and cake", found.Name)
	assert.Equal(t, 5.00, found.Amount)
}

func TestExpenseRepository_Delete(t *testing.T) {
	db := setupExpenseTestDB(t)
	repo := repository.NewExpenseRepository(db)

	expense := newTestExpense("Snacks", 7.25)
	require.NoError(t, repo.Create(context.Background(), expense))

	err := repo.Delete(context.Background(), expense.ID)
	assert.NoError(t, err)

	_, err = repo.GetByID(context.Background(), expense.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Delete(context.Background(), 9999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
