package tracker

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spendwise/expense-tracker/internal/domain"
)

// Form validation errors shown to the user
var (
	ErrMissingFields = errors.New("please fill in all fields")
	ErrOverBudget    = errors.New("expense amount exceeds the remaining budget")
)

// Form collects the four expense fields as raw user input. When an edit is
// in progress the fields are prefilled from the record being edited.
type Form struct {
	Name     string
	Amount   string
	Category string
	Date     string
}

// Prefill loads the form from an existing record
func (f *Form) Prefill(e domain.ExpenseDTO) {
	f.Name = e.Name
	f.Amount = strconv.FormatFloat(e.Amount, 'f', -1, 64)
	f.Category = e.Category
	f.Date = e.Date.String()
}

// Reset clears all fields
func (f *Form) Reset() {
	*f = Form{}
}

// Validate checks the form against the remaining budget and assembles the
// expense to submit. All four fields are required; the amount must parse as
// a positive number and may not exceed the remaining budget. A rejected form
// issues no request.
func (f *Form) Validate(remaining decimal.Decimal) (domain.CreateExpenseRequest, error) {
	if f.Name == "" || f.Amount == "" || f.Category == "" || f.Date == "" {
		return domain.CreateExpenseRequest{}, ErrMissingFields
	}

	amount, err := decimal.NewFromString(f.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return domain.CreateExpenseRequest{}, fmt.Errorf("invalid amount %q: must be a positive number", f.Amount)
	}

	if amount.GreaterThan(remaining) {
		return domain.CreateExpenseRequest{}, ErrOverBudget
	}

	date, err := domain.ParseDateOnly(f.Date)
	if err != nil {
		return domain.CreateExpenseRequest{}, err
	}

	value, _ := amount.Float64()
	return domain.CreateExpenseRequest{
		Name:     f.Name,
		Amount:   value,
		Category: f.Category,
		Date:     &date,
	}, nil
}
