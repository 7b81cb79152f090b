package ingest

import (
	"ledger-reconciler/core/ledger"
)

// PostDateAdapter handles the generic detail layout with a Post Date column
// and a single Amount column reporting debits as positive.
type PostDateAdapter struct{}

func (PostDateAdapter) Name() string { return "post_date" }

func (PostDateAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Post Date", "Amount")
}

func (a PostDateAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	return parseSingleDateLayout(header, rows, sourceID, "Post Date", true)
}

// DateAdapter handles the generic detail layout with a bare Date column and
// a single Amount column reporting debits as positive.
type DateAdapter struct{}

func (DateAdapter) Name() string { return "date" }

func (DateAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Date", "Amount")
}

func (a DateAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	return parseSingleDateLayout(header, rows, sourceID, "Date", true)
}

// DebitCreditAdapter handles the generic detail layout with a Posted Date
// column and split Debit/Credit amount columns.
type DebitCreditAdapter struct{}

func (DebitCreditAdapter) Name() string { return "debit_credit" }

func (DebitCreditAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Posted Date") && c.hasAny("Debit", "Credit")
}

func (a DebitCreditAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	c := indexColumns(header)
	records := make([]ledger.Record, 0, len(rows))
	var issues []ParseIssue

	for i, row := range rows {
		r := ledger.Record{
			Origin:        ledger.OriginDetail,
			Description:   cleanDescription(c.cell(row, "Description")),
			SourceID:      sourceID,
			SequenceIndex: i,
		}

		date := parseDateCell(c.cell(row, "Posted Date"), i, "Posted Date", &issues)
		r.TransactionDate = date
		r.PostDate = date

		amount, issue := parseDebitCredit(c.cell(row, "Debit"), c.cell(row, "Credit"), i)
		if issue != nil {
			issues = append(issues, *issue)
		}
		r.Amount = amount

		records = append(records, r)
	}
	return records, issues
}
