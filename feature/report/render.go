package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"ledger-reconciler/core/reconcile"
)

// Render writes the summary as a two-column table for terminal output.
func Render(w io.Writer, s Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})

	table.Append([]string{"Detail records", fmt.Sprintf("%d", s.DetailTotal)})
	table.Append([]string{"Aggregator records", fmt.Sprintf("%d", s.AggregatorTotal)})
	table.Append([]string{"Matched", fmt.Sprintf("%d", s.Matched)})
	table.Append([]string{"Unmatched detail", fmt.Sprintf("%d", s.UnmatchedDetail)})
	table.Append([]string{"Unmatched aggregator", fmt.Sprintf("%d", s.UnmatchedAggregator)})
	table.Append([]string{"Match rate", fmt.Sprintf("%.1f%%", s.MatchRate)})

	table.Render()
}

// RenderUnmatched writes the unmatched rows as a table, one line per row
// with the diagnostic that explains it.
func RenderUnmatched(w io.Writer, rows []reconcile.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Description", "Amount", "Key", "Diagnostic"})

	for _, r := range rows {
		if r.Matched {
			continue
		}
		amount := ""
		if r.Amount != nil {
			amount = r.Amount.StringFixed(2)
		}
		table.Append([]string{r.Date, r.Description, amount, r.ReconciledKey, r.Diagnostic})
	}

	table.Render()
}
