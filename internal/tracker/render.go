package tracker

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// RenderList writes the current expense collection as a table. Rendering is
// purely a function of the state.
func RenderList(w io.Writer, s State) {
	if len(s.Expenses) == 0 {
		fmt.Fprintln(w, "No expenses recorded.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAMOUNT\tCATEGORY\tDATE")
	for _, e := range s.Expenses {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t%s\t%s\n",
			e.ID,
			e.Name,
			decimal.NewFromFloat(e.Amount).StringFixed(2),
			e.Category,
			e.Date,
		)
	}
	tw.Flush()
}

// RenderSummary writes the budget summary: the session budget, the total of
// all loaded expenses, and the derived remaining budget.
func RenderSummary(w io.Writer, s State) {
	fmt.Fprintf(w, "Budget:           $%s\n", s.Budget.StringFixed(2))
	fmt.Fprintf(w, "Total Expenses:   $%s\n", s.TotalExpenses().StringFixed(2))
	fmt.Fprintf(w, "Remaining Budget: $%s\n", s.RemainingBudget().StringFixed(2))
}
