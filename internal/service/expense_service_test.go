package service_test

import (
	"context"
	"testing"

	"github.com/spendwise/expense-tracker/internal/database"
	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/spendwise/expense-tracker/internal/repository"
	"github.com/spendwise/expense-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupExpenseService(t *testing.T) *service.ExpenseService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return service.NewExpenseService(repository.NewExpenseRepository(db), zap.NewNop())
}

func createRequest(name string, amount float64, category, date string) *domain.CreateExpenseRequest {
	d, err := domain.ParseDateOnly(date)
	if err != nil {
		panic(err)
	}
	return &domain.CreateExpenseRequest{
		Name:     name,
		Amount:   amount,
		Category: category,
		Date:     &d,
	}
}

func TestExpenseService_Create(t *testing.T) {
	svc := setupExpenseService(t)

	dto, err := svc.Create(context.Background(), createRequest("Groceries", 42.50, "Food", "2026-08-01"))
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "Groceries", dto.Name)
	assert.Equal(t, 42.50, dto.Amount)
	assert.Equal(t, "Food", dto.Category)
	assert.Equal(t, "2026-08-01", dto.Date.String())
	assert.NotEmpty(t, dto.CreatedAt)
	assert.NotEmpty(t, dto.UpdatedAt)
}

func TestExpenseService_GetByID(t *testing.T) {
	svc := setupExpenseService(t)

	created, err := svc.Create(context.Background(), createRequest("Taxi", 18.00, "Transport", "2026-08-02"))
	require.NoError(t, err)

	found, err := svc.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Taxi", found.Name)

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 9999)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestExpenseService_List(t *testing.T) {
	svc := setupExpenseService(t)

	_, err := svc.Create(context.Background(), createRequest("Rent", 900, "Utilities", "2026-08-01"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), createRequest("Lunch", 12.30, "Food", "2026-08-03"))
	require.NoError(t, err)

	expenses, err := svc.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Name)
	assert.Equal(t, "Lunch", expenses[1].Name)
}

func TestExpenseService_Update(t *testing.T) {
	svc := setupExpenseService(t)

	created, err := svc.Create(context.Background(), createRequest("Internet", 39.99, "Utilities", "2026-08-05"))
	require.NoError(t, err)

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		amount := 44.99
		updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateExpenseRequest{
			Amount: &amount,
		})
		require.NoError(t, err)
		assert.Equal(t, 44.99, updated.Amount)
		assert.Equal(t, "Internet", updated.Name)
		assert.Equal(t, "Utilities", updated.Category)
		assert.Equal(t, "2026-08-05", updated.Date.String())
	})

	t.Run("full update", func(t *testing.T) {
		name := "Fibre internet"
		amount := 49.99
		category := "Utilities"
		date, err := domain.ParseDateOnly("2026-08-06")
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, &domain.UpdateExpenseRequest{
			Name:     &name,
			Amount:   &amount,
			Category: &category,
			Date:     &date,
		})
		require.NoError(t, err)
		assert.Equal(t, "Fibre internet", updated.Name)
		assert.Equal(t, 49.99, updated.Amount)
		assert.Equal(t, "2026-08-06", updated.Date.String())
	})

	t.Run("not found", func(t *testing.T) {
		name := "Nothing"
		_, err := svc.Update(context.Background(), 9999, &domain.UpdateExpenseRequest{Name: &name})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestExpenseService_Delete(t *testing.T) {
	svc := setupExpenseService(t)

	created, err := svc.Create(context.Background(), createRequest("Popcorn", 6.50, "Food", "2026-08-07"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	t.Run("not found", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
