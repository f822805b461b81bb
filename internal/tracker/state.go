// Package tracker holds the client-side state of the expense tracker as an
// explicit, immutable state value driven by a pure update function. Every
// user intent is an Action; anything that must reach the network comes back
// out of Update as an Effect for the caller to run, whose outcome re-enters
// as a settle Action.
package tracker

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spendwise/expense-tracker/internal/domain"
)

// ErrInvalidBudget is returned when a budget input is not a positive number
var ErrInvalidBudget = errors.New("budget must be a positive number")

// ParseBudget parses a user-entered budget string. Anything that is not a
// positive number is rejected.
func ParseBudget(input string) (decimal.Decimal, error) {
	budget, err := decimal.NewFromString(input)
	if err != nil || budget.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidBudget
	}
	return budget, nil
}

// State is the tracker's client state. The expense slice mirrors the server
// list order and may be stale; Budget is session-only and never persisted.
type State struct {
	Expenses []domain.ExpenseDTO
	Budget   decimal.Decimal
	// Editing is the record an in-progress edit targets. It stays set while
	// the update request is in flight and clears only on a successful settle,
	// so a failed update leaves the edit resumable.
	Editing *domain.ExpenseDTO
}

// TotalExpenses sums the amounts of all loaded expenses
func (s State) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

// RemainingBudget is budget minus the sum of all loaded expense amounts,
// derived fresh on every call
func (s State) RemainingBudget() decimal.Decimal {
	return s.Budget.Sub(s.TotalExpenses())
}

// Action is a single input to the state machine
type Action interface{ isAction() }

// Load requests the initial list fetch
type Load struct{}

// ListLoaded replaces the local list with the server's
type ListLoaded struct{ Expenses []domain.ExpenseDTO }

// ListFailed reports a failed list fetch; the list stays empty
type ListFailed struct{ Err error }

// SetBudget replaces the session budget
type SetBudget struct{ Budget decimal.Decimal }

// StartEdit puts the tracker in edit mode for the given record
type StartEdit struct{ Expense domain.ExpenseDTO }

// CancelEdit leaves edit mode without submitting
type CancelEdit struct{}

// Submit sends the validated form content: an update when editing, a create
// otherwise
type Submit struct{ Expense domain.CreateExpenseRequest }

// SubmitSettled reports the outcome of a create or update request
type SubmitSettled struct {
	WasEdit bool
	Expense *domain.ExpenseDTO
	Err     error
}

// Delete requests removal of the expense with the given id
type Delete struct{ ID uint }

// DeleteSettled reports the outcome of a delete request
type DeleteSettled struct {
	ID  uint
	Err error
}

func (Load) isAction()          {}
func (ListLoaded) isAction()    {}
func (ListFailed) isAction()    {}
func (SetBudget) isAction()     {}
func (StartEdit) isAction()     {}
func (CancelEdit) isAction()    {}
func (Submit) isAction()        {}
func (SubmitSettled) isAction() {}
func (Delete) isAction()        {}
func (DeleteSettled) isAction() {}

// Effect is a side-effecting request the caller must issue, feeding the
// result back in as the matching settle Action
type Effect interface{ isEffect() }

// FetchList fetches the full expense list
type FetchList struct{}

// CreateExpense creates a new expense
type CreateExpense struct{ Req domain.CreateExpenseRequest }

// UpdateExpense replaces the fields of an existing expense
type UpdateExpense struct {
	ID  uint
	Req domain.UpdateExpenseRequest
}

// DeleteExpense removes an expense
type DeleteExpense struct{ ID uint }

func (FetchList) isEffect()     {}
func (CreateExpense) isEffect() {}
func (UpdateExpense) isEffect() {}
func (DeleteExpense) isEffect() {}

// Update is the pure transition function: it never performs I/O and never
// mutates its input.
func Update(s State, action Action) (State, []Effect) {
	switch a := action.(type) {
	case Load:
		return s, []Effect{FetchList{}}

	case ListLoaded:
		s.Expenses = a.Expenses
		return s, nil

	case ListFailed:
		// Fetch failures leave the list empty; the caller logs the error
		s.Expenses = nil
		return s, nil

	case SetBudget:
		s.Budget = a.Budget
		return s, nil

	case StartEdit:
		expense := a.Expense
		s.Editing = &expense
		return s, nil

	case CancelEdit:
		s.Editing = nil
		return s, nil

	case Submit:
		if s.Editing != nil {
			// Editing stays set until SubmitSettled succeeds
			return s, []Effect{UpdateExpense{
				ID:  s.Editing.ID,
				Req: fullUpdateRequest(a.Expense),
			}}
		}
		return s, []Effect{CreateExpense{Req: a.Expense}}

	case SubmitSettled:
		if a.Err != nil {
			// A failed update keeps Editing so the edit can be retried
			return s, nil
		}
		if a.WasEdit {
			s.Expenses = replaceExpense(s.Expenses, *a.Expense)
			s.Editing = nil
		} else {
			s.Expenses = appendExpense(s.Expenses, *a.Expense)
		}
		return s, nil

	case Delete:
		// Rows without a server-assigned id cannot be deleted
		if a.ID == 0 {
			return s, nil
		}
		return s, []Effect{DeleteExpense{ID: a.ID}}

	case DeleteSettled:
		if a.Err != nil {
			return s, nil
		}
		s.Expenses = removeExpense(s.Expenses, a.ID)
		return s, nil
	}

	return s, nil
}

// fullUpdateRequest converts the form's complete record into an update body.
// The form always submits all four fields, so edits are full replacements
// even though the API accepts partial bodies.
func fullUpdateRequest(req domain.CreateExpenseRequest) domain.UpdateExpenseRequest {
	return domain.UpdateExpenseRequest{
		Name:     &req.Name,
		Amount:   &req.Amount,
		Category: &req.Category,
		Date:     req.Date,
	}
}

func replaceExpense(expenses []domain.ExpenseDTO, updated domain.ExpenseDTO) []domain.ExpenseDTO {
	next := make([]domain.ExpenseDTO, len(expenses))
	for i, e := range expenses {
		if e.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = e
		}
	}
	return next
}

func appendExpense(expenses []domain.ExpenseDTO, created domain.ExpenseDTO) []domain.ExpenseDTO {
	next := make([]domain.ExpenseDTO, 0, len(expenses)+1)
	next = append(next, expenses...)
	return append(next, created)
}

func removeExpense(expenses []domain.ExpenseDTO, id uint) []domain.ExpenseDTO {
	next := make([]domain.ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next
}
