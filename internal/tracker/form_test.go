package tracker_test

import (
	"testing"

	"github.com/spendwise/expense-tracker/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidate(t *testing.T) {
	remaining := mustBudget(t, "100")

	t.Run("valid", func(t *testing.T) {
		form := tracker.Form{Name: "Coffee", Amount: "12.50", Category: "Food", Date: "2026-08-01"}

		req, err := form.Validate(remaining)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", req.Name)
		assert.Equal(t, 12.50, req.Amount)
		assert.Equal(t, "Food", req.Category)
		require.NotNil(t, req.Date)
		assert.Equal(t, "2026-08-01", req.Date.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		forms := []tracker.Form{
			{},
			{Name: "Coffee", Amount: "12.50", Category: "Food"},
			{Amount: "12.50", Category: "Food", Date: "2026-08-01"},
		}
		for _, form := range forms {
			_, err := form.Validate(remaining)
			assert.ErrorIs(t, err, tracker.ErrMissingFields)
		}
	})

	t.Run("unparseable amount", func(t *testing.T) {
		form := tracker.Form{Name: "Coffee", Amount: "abc", Category: "Food", Date: "2026-08-01"}
		_, err := form.Validate(remaining)
		assert.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		for _, amount := range []string{"0", "-12.50"} {
			form := tracker.Form{Name: "Coffee", Amount: amount, Category: "Food", Date: "2026-08-01"}
			_, err := form.Validate(remaining)
			assert.Error(t, err, "amount %q", amount)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		form := tracker.Form{Name: "Laptop", Amount: "100.01", Category: "Utilities", Date: "2026-08-01"}
		_, err := form.Validate(remaining)
		assert.ErrorIs(t, err, tracker.ErrOverBudget)
	})

	t.Run("exactly the remaining budget passes", func(t *testing.T) {
		form := tracker.Form{Name: "Laptop", Amount: "100", Category: "Utilities", Date: "2026-08-01"}
		_, err := form.Validate(remaining)
		assert.NoError(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		form := tracker.Form{Name: "Coffee", Amount: "12.50", Category: "Food", Date: "01/08/2026"}
		_, err := form.Validate(remaining)
		assert.Error(t, err)
	})
}

func TestFormPrefillAndReset(t *testing.T) {
	expense := expenseDTO(t, 3, "Bus ticket", 3.20)
	expense.Category = "Transport"

	var form tracker.Form
	form.Prefill(expense)
	assert.Equal(t, "Bus ticket", form.Name)
	assert.Equal(t, "3.2", form.Amount)
	assert.Equal(t, "Transport", form.Category)
	assert.Equal(t, "2026-08-01", form.Date)

	form.Reset()
	assert.Equal(t, tracker.Form{}, form)
}
