package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spendwise/expense-tracker/internal/client"
	"github.com/spendwise/expense-tracker/internal/domain"
	"github.com/spendwise/expense-tracker/internal/tracker"
	"go.uber.org/zap"
)

// Session runs the interactive tracker loop. It owns the current state and
// pushes every user intent through tracker.Update, executing the returned
// effects against the API client and feeding their outcomes back in as
// settle actions. Request failures go to the log only; the two explicit
// validation rejections (bad budget, bad form) are shown to the user.
type Session struct {
	client *client.Client
	state  tracker.State
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

// NewSession creates a session reading commands from in and rendering to out
func NewSession(c *client.Client, logger *zap.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		client: c,
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Run loads the expense list and processes commands until EOF or quit
func (s *Session) Run(ctx context.Context) error {
	s.dispatch(ctx, tracker.Load{})
	s.render()

	fmt.Fprintln(s.out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		s.handle(ctx, line)
	}

	return scanner.Err()
}

func (s *Session) handle(ctx context.Context, line string) {
	args := strings.Fields(line)
	command, args := args[0], args[1:]

	switch command {
	case "help":
		s.printHelp()

	case "budget":
		s.handleBudget(args)

	case "add":
		s.handleAdd(ctx, args)

	case "edit":
		s.handleEdit(ctx, args)

	case "cancel":
		s.dispatch(ctx, tracker.CancelEdit{})
		fmt.Fprintln(s.out, "Edit cancelled.")

	case "delete":
		s.handleDelete(ctx, args)

	case "list":
		tracker.RenderList(s.out, s.state)

	case "summary":
		tracker.RenderSummary(s.out, s.state)

	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type \"help\" for commands.\n", command)
	}
}

func (s *Session) handleBudget(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: budget <amount>")
		return
	}

	budget, err := tracker.ParseBudget(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid budget amount.")
		return
	}

	s.state, _ = tracker.Update(s.state, tracker.SetBudget{Budget: budget})
	s.render()
}

func (s *Session) handleAdd(ctx context.Context, args []string) {
	if len(args) != 4 {
		fmt.Fprintln(s.out, "Usage: add <name> <amount> <category> <date>")
		return
	}

	form := tracker.Form{
		Name:     args[0],
		Amount:   args[1],
		Category: args[2],
		Date:     args[3],
	}
	s.submit(ctx, form)
}

// handleEdit accepts "edit <id> [field=value ...]". Unspecified fields keep
// the record's current values via the form prefill.
func (s *Session) handleEdit(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: edit <id> [name=...] [amount=...] [category=...] [date=...]")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid expense id %q.\n", args[0])
		return
	}

	expense, ok := s.findExpense(uint(id))
	if !ok {
		fmt.Fprintf(s.out, "No expense with id %d in the current list.\n", id)
		return
	}

	var form tracker.Form
	form.Prefill(expense)

	for _, arg := range args[1:] {
		field, value, found := strings.Cut(arg, "=")
		if !found {
			fmt.Fprintf(s.out, "Expected field=value, got %q.\n", arg)
			return
		}
		switch field {
		case "name":
			form.Name = value
		case "amount":
			form.Amount = value
		case "category":
			form.Category = value
		case "date":
			form.Date = value
		default:
			fmt.Fprintf(s.out, "Unknown field %q.\n", field)
			return
		}
	}

	// Enter edit mode only once the whole command has parsed, so a rejected
	// argument cannot leave the session editing and silently redirect the
	// next submission to this record.
	s.dispatch(ctx, tracker.StartEdit{Expense: expense})
	s.submit(ctx, form)
}

func (s *Session) handleDelete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: delete <id>")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid expense id %q.\n", args[0])
		return
	}
	if id == 0 {
		s.logger.Warn("delete refused: expense has no server-assigned id")
		fmt.Fprintln(s.out, "That expense has no id yet and cannot be deleted.")
		return
	}

	s.dispatch(ctx, tracker.Delete{ID: uint(id)})
	s.render()
}

// submit validates the form against the currently known remaining budget and
// dispatches the result. A rejected form never reaches the network; if it was
// an edit, the rejection also ends the edit so the next submission cannot
// target the old record.
func (s *Session) submit(ctx context.Context, form tracker.Form) {
	expense, err := form.Validate(s.state.RemainingBudget())
	if err != nil {
		fmt.Fprintln(s.out, capitalize(err.Error()))
		if s.state.Editing != nil {
			s.dispatch(ctx, tracker.CancelEdit{})
		}
		return
	}

	s.dispatch(ctx, tracker.Submit{Expense: expense})
	s.render()
}

func (s *Session) findExpense(id uint) (domain.ExpenseDTO, bool) {
	for _, e := range s.state.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return domain.ExpenseDTO{}, false
}

func (s *Session) dispatch(ctx context.Context, action tracker.Action) {
	next, effects := tracker.Update(s.state, action)
	s.state = next

	for _, effect := range effects {
		s.runEffect(ctx, effect)
	}
}

func (s *Session) runEffect(ctx context.Context, effect tracker.Effect) {
	switch e := effect.(type) {
	case tracker.FetchList:
		expenses, err := s.client.List(ctx)
		if err != nil {
			s.logger.Error("failed to fetch expenses", zap.Error(err))
			s.dispatch(ctx, tracker.ListFailed{Err: err})
			return
		}
		s.dispatch(ctx, tracker.ListLoaded{Expenses: expenses})

	case tracker.CreateExpense:
		created, err := s.client.Create(ctx, e.Req)
		if err != nil {
			s.logger.Error("failed to add expense", zap.Error(err))
		}
		s.dispatch(ctx, tracker.SubmitSettled{WasEdit: false, Expense: created, Err: err})

	case tracker.UpdateExpense:
		updated, err := s.client.Update(ctx, e.ID, e.Req)
		if err != nil {
			s.logger.Error("failed to update expense", zap.Error(err), zap.Uint("expense_id", e.ID))
		}
		s.dispatch(ctx, tracker.SubmitSettled{WasEdit: true, Expense: updated, Err: err})

	case tracker.DeleteExpense:
		err := s.client.Delete(ctx, e.ID)
		if err != nil {
			s.logger.Error("failed to delete expense", zap.Error(err), zap.Uint("expense_id", e.ID))
		}
		s.dispatch(ctx, tracker.DeleteSettled{ID: e.ID, Err: err})
	}
}

func (s *Session) render() {
	tracker.RenderList(s.out, s.state)
	tracker.RenderSummary(s.out, s.state)
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  budget <amount>                         set the session budget
  add <name> <amount> <category> <date>   add an expense (date: YYYY-MM-DD)
  edit <id> [field=value ...]             edit an expense (fields: name, amount, category, date)
  cancel                                  leave edit mode
  delete <id>                             delete an expense
  list                                    show all expenses
  summary                                 show budget summary
  quit                                    exit
`)
	fmt.Fprintf(s.out, "Suggested categories: %s\n", strings.Join(domain.SuggestedCategories, ", "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
