package ingest

import (
	"ledger-reconciler/core/ledger"
)

// DiscoverAdapter handles Discover card exports: separate transaction and
// post dates, a single amount column with debits reported as positive.
type DiscoverAdapter struct{}

func (DiscoverAdapter) Name() string { return "discover" }

func (DiscoverAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Transaction Date", "Post Date", "Amount") && !c.hasAny("Tags", "Account")
}

func (a DiscoverAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	c := indexColumns(header)
	records := make([]ledger.Record, 0, len(rows))
	var issues []ParseIssue

	for i, row := range rows {
		r := ledger.Record{
			Origin:        ledger.OriginDetail,
			Description:   cleanDescription(c.cell(row, "Description")),
			Category:      c.cell(row, "Category"),
			SourceID:      sourceID,
			SequenceIndex: i,
		}

		r.TransactionDate = parseDateCell(c.cell(row, "Transaction Date"), i, "Transaction Date", &issues)
		r.PostDate = parseDateCell(c.cell(row, "Post Date"), i, "Post Date", &issues)

		amount, issue := parseSignedAmount(c.cell(row, "Amount"), true, i, "Amount")
		if issue != nil {
			issues = append(issues, *issue)
		}
		r.Amount = amount

		records = append(records, r)
	}
	return records, issues
}

// AmexAdapter handles American Express exports, which carry a single date
// used as both transaction and post date, with debits reported as positive.
type AmexAdapter struct{}

func (AmexAdapter) Name() string { return "amex" }

func (AmexAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Date", "Amount", "Category") && !c.has("Post Date")
}

func (a AmexAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	return parseSingleDateLayout(header, rows, sourceID, "Date", true)
}

// CapitalOneAdapter handles Capital One exports: transaction plus posted
// dates and split Debit/Credit amount columns.
type CapitalOneAdapter struct{}

func (CapitalOneAdapter) Name() string { return "capital_one" }

func (CapitalOneAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Transaction Date", "Posted Date") && c.hasAny("Debit", "Credit")
}

func (a CapitalOneAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	c := indexColumns(header)
	records := make([]ledger.Record, 0, len(rows))
	var issues []ParseIssue

	for i, row := range rows {
		r := ledger.Record{
			Origin:        ledger.OriginDetail,
			Description:   cleanDescription(c.cell(row, "Description")),
			Category:      c.cell(row, "Category"),
			SourceID:      sourceID,
			SequenceIndex: i,
		}

		r.TransactionDate = parseDateCell(c.cell(row, "Transaction Date"), i, "Transaction Date", &issues)
		r.PostDate = parseDateCell(c.cell(row, "Posted Date"), i, "Posted Date", &issues)

		amount, issue := parseDebitCredit(c.cell(row, "Debit"), c.cell(row, "Credit"), i)
		if issue != nil {
			issues = append(issues, *issue)
		}
		r.Amount = amount

		records = append(records, r)
	}
	return records, issues
}

// ChaseAdapter handles Chase exports, which carry only a posting date and
// already report debits as negative.
type ChaseAdapter struct{}

func (ChaseAdapter) Name() string { return "chase" }

func (ChaseAdapter) Detect(header []string) bool {
	c := indexColumns(header)
	return c.has("Posting Date", "Amount") && c.hasAny("Details", "Balance")
}

func (a ChaseAdapter) Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue) {
	return parseSingleDateLayout(header, rows, sourceID, "Posting Date", false)
}

// parseSingleDateLayout is the shared body for layouts with one date column
// that serves as both transaction and post date.
func parseSingleDateLayout(header []string, rows [][]string, sourceID, dateField string, invert bool) ([]ledger.Record, []ParseIssue) {
	c := indexColumns(header)
	records := make([]ledger.Record, 0, len(rows))
	var issues []ParseIssue

	for i, row := range rows {
		r := ledger.Record{
			Origin:        ledger.OriginDetail,
			Description:   cleanDescription(c.cell(row, "Description")),
			Category:      c.cell(row, "Category"),
			SourceID:      sourceID,
			SequenceIndex: i,
		}

		date := parseDateCell(c.cell(row, dateField), i, dateField, &issues)
		r.TransactionDate = date
		r.PostDate = date

		amount, issue := parseSignedAmount(c.cell(row, "Amount"), invert, i, "Amount")
		if issue != nil {
			issues = append(issues, *issue)
		}
		r.Amount = amount

		records = append(records, r)
	}
	return records, issues
}

