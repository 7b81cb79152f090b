package ingest

import (
	"ledger-reconciler/core/ledger"
)

// AggregatorAdapter handles the consolidated-ledger export. Amounts already
// carry the canonical sign convention and rows may include category, tags
// and account columns. The export carries one effective date per row; it is
// stored in both date fields and treated as the post date during matching.
type AggregatorAdapter struct{}

func (AggregatorAdapter) Name() string { return "aggregator" }

func (AggregatorAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Transaction Date", "Amount") && c.hasAny("Tags", "Account")
}

func (a AggregatorAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	c := indexColumns(header)
	records := make([]ledger.Record, 0, len(rows))
	var issues []ParseIssue

	for i, row := range rows {
		r := ledger.Record{
			Origin:        ledger.OriginAggregator,
			Description:   cleanDescription(c.cell(row, "Description")),
			Category:      c.cell(row, "Category"),
			Tags:          c.cell(row, "Tags"),
			Account:       c.cell(row, "Account"),
			SourceID:      sourceID,
			SequenceIndex: i,
		}

		date := parseDateCell(c.cell(row, "Transaction Date"), i, "Transaction Date", &issues)
		if date.IsZero() && c.has("Post Date") {
			// Some exports populate only the post-date column.
			date = parseDateCell(c.cell(row, "Post Date"), i, "Post Date", &issues)
		}
		r.TransactionDate = date
		r.PostDate = date

		amount, issue := parseSignedAmount(c.cell(row, "Amount"), false, i, "Amount")
		if issue != nil {
			issues = append(issues, *issue)
		}
		r.Amount = amount

		records = append(records, r)
	}
	return records, issues
}
