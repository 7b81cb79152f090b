package reconcile

import (
	"github.com/shopspring/decimal"

	"ledger-reconciler/core/ledger"
)

// Row is the single output shape for matched pairs and unmatched records,
// consumed by writers and reports.
type Row struct {
	// Date is the resolved calendar date, YYYY-MM-DD. Empty when the source
	// record carried no usable date.
	Date string `json:"date"`

	// YearMonth is the first seven characters of Date (YYYY-MM).
	YearMonth string `json:"year_month"`

	// Account is the resolved account name.
	Account string `json:"account"`

	// Description is the resolved description.
	Description string `json:"description"`

	// Category is the resolved category.
	Category string `json:"category"`

	// Tags comes exclusively from the aggregator side; detail-only rows
	// always leave it empty.
	Tags string `json:"tags"`

	// Amount is the resolved signed amount. Nil when the source amount was
	// missing or unparseable; it is never coerced to zero.
	Amount *decimal.Decimal `json:"amount"`

	// ReconciledKey is the formatted string of the winning key.
	ReconciledKey string `json:"reconciled_key"`

	// Matched reports whether the row originates from a match.
	Matched bool `json:"matched"`

	// Diagnostic carries the unmatch reason for manual review, empty on
	// matched rows.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// AssembleMatch merges a match into one output row. For each of date,
// account, description, category and amount the aggregator's value wins when
// present, with the detail record as fallback. Tags are sourced from the
// aggregator only.
func AssembleMatch(m Match) Row {
	agg, det := m.Aggregator, m.Detail

	date := agg.BestDate()
	if date.IsZero() {
		date = det.BestDate()
	}

	amount := agg.Amount
	if amount == nil {
		amount = det.Amount
	}

	dateStr := ledger.FormatDate(date)
	return Row{
		Date:          dateStr,
		YearMonth:     yearMonth(dateStr),
		Account:       firstNonEmpty(agg.Account, det.Account),
		Description:   firstNonEmpty(agg.Description, det.Description),
		Category:      firstNonEmpty(agg.Category, det.Category),
		Tags:          agg.Tags,
		Amount:        amount,
		ReconciledKey: m.Key.String(),
		Matched:       true,
	}
}

// AssembleUnmatched projects an unmatched record into the row shape. All
// fields come from the record itself; there is no partner to fall back to.
func AssembleUnmatched(u Unmatched) Row {
	r := u.Record

	tags := ""
	if r.Origin == ledger.OriginAggregator {
		tags = r.Tags
	}

	dateStr := ledger.FormatDate(r.BestDate())
	return Row{
		Date:          dateStr,
		YearMonth:     yearMonth(dateStr),
		Account:       r.Account,
		Description:   r.Description,
		Category:      r.Category,
		Tags:          tags,
		Amount:        r.Amount,
		ReconciledKey: u.Key.String(),
		Matched:       false,
		Diagnostic:    string(u.Reason),
	}
}

// Assemble projects a full result into output rows: matches first, then
// unmatched detail, then unmatched aggregator, each set in engine order.
func Assemble(res Result) []Row {
	rows := make([]Row, 0, len(res.Matches)+len(res.UnmatchedDetail)+len(res.UnmatchedAggregator))
	for _, m := range res.Matches {
		rows = append(rows, AssembleMatch(m))
	}
	for _, u := range res.UnmatchedDetail {
		rows = append(rows, AssembleUnmatched(u))
	}
	for _, u := range res.UnmatchedAggregator {
		rows = append(rows, AssembleUnmatched(u))
	}
	return rows
}

// yearMonth derives YYYY-MM from a YYYY-MM-DD date string.
func yearMonth(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
