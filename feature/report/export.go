package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ledger-reconciler/core/reconcile"
)

var exportHeader = []string{
	"Date", "YearMonth", "Account", "Description", "Category", "Tags",
	"Amount", "ReconciledKey", "Matched", "Diagnostic",
}

// WriteCSV writes assembled output rows as CSV, one line per row in
// assembly order. A nil amount exports as an empty cell.
func WriteCSV(w io.Writer, rows []reconcile.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rows {
		amount := ""
		if r.Amount != nil {
			amount = r.Amount.StringFixed(2)
		}
		record := []string{
			r.Date, r.YearMonth, r.Account, r.Description, r.Category, r.Tags,
			amount, r.ReconciledKey, strconv.FormatBool(r.Matched), r.Diagnostic,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
