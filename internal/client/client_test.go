package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spendwise/expense-tracker/internal/client"
	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExpense(id uint) domain.ExpenseDTO {
	date, _ := domain.ParseDateOnly("2026-08-01")
	return domain.ExpenseDTO{
		ID:       id,
		Name:     "Groceries",
		Amount:   42.50,
		Category: "Food",
		Date:     date,
	}
}

func TestClientList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/expenses", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.ExpenseDTO{stubExpense(1), stubExpense(2)})
	}))
	defer server.Close()

	c := client.New(server.URL)
	expenses, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, uint(1), expenses[0].ID)
	assert.Equal(t, "2026-08-01", expenses[0].Date.String())
}

func TestClientCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/expenses", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.CreateExpenseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Groceries", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(stubExpense(7))
	}))
	defer server.Close()

	date, _ := domain.ParseDateOnly("2026-08-01")
	c := client.New(server.URL)
	created, err := c.Create(context.Background(), domain.CreateExpenseRequest{
		Name: "Groceries", Amount: 42.50, Category: "Food", Date: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)

	t.Run("validation rejection", func(t *testing.T) {
		rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Message: "All fields are required"})
		}))
		defer rejecting.Close()

		_, err := client.New(rejecting.URL).Create(context.Background(), domain.CreateExpenseRequest{})
		var statusErr *client.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "All fields are required", statusErr.Message)
	})
}

func TestClientUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/expenses/7", r.URL.Path)

		var req domain.UpdateExpenseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Amount)
		assert.Equal(t, 50.00, *req.Amount)

		expense := stubExpense(7)
		expense.Amount = 50.00
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(expense)
	}))
	defer server.Close()

	amount := 50.00
	c := client.New(server.URL)
	updated, err := c.Update(context.Background(), 7, domain.UpdateExpenseRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 50.00, updated.Amount)
}

func TestClientDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/expenses/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := client.New(server.URL)
	assert.NoError(t, c.Delete(context.Background(), 7))

	t.Run("not found", func(t *testing.T) {
		missing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(domain.ErrorResponse{Message: "Expense not found"})
		}))
		defer missing.Close()

		err := client.New(missing.URL).Delete(context.Background(), 9999)
		var statusErr *client.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, "Expense not found", statusErr.Message)
	})
}

func TestStatusErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := client.New(server.URL).List(context.Background())
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "api error 500", statusErr.Error())
}
