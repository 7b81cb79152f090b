package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origin identifies which population a canonical record belongs to.
type Origin int

const (
	// OriginDetail marks a record sourced from a single institution's
	// statement export.
	OriginDetail Origin = iota
	// OriginAggregator marks a record from the consolidated ledger that
	// detail records are reconciled against.
	OriginAggregator
)

// String returns the lowercase name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginDetail:
		return "detail"
	case OriginAggregator:
		return "aggregator"
	default:
		return "unknown"
	}
}

// Record is the canonical transaction produced by a format adapter or the
// aggregator loader. Dates use the zero time.Time to signal absence; Amount
// is nil when the source value was missing or unparseable. A nil amount is
// never coerced to zero, since a false zero would create spurious key
// collisions during matching.
type Record struct {
	// Origin is the population this record belongs to.
	Origin Origin

	// TransactionDate is the calendar date of the transaction.
	TransactionDate time.Time

	// PostDate is the calendar date the transaction posted. Absent only for
	// detail records from formats that do not carry it.
	PostDate time.Time

	// Description is the transaction description, preserved as-is apart
	// from newline stripping.
	Description string

	// Amount is the signed amount. Negative denotes money leaving the
	// account (debit), positive money entering (credit). Adapters normalize
	// the sign before the record reaches the engine.
	Amount *decimal.Decimal

	// Category is the transaction category, empty when unavailable.
	Category string

	// Tags holds aggregator-side tags, empty for detail records.
	Tags string

	// Account is the account name, empty when unavailable.
	Account string

	// SourceID identifies the originating file, for audit.
	SourceID string

	// SequenceIndex is the record's 0-based position within its originating
	// ordered sequence. The engine's FIFO tie-break depends on it.
	SequenceIndex int
}

// HasTransactionDate reports whether the transaction date is present.
func (r *Record) HasTransactionDate() bool {
	return !r.TransactionDate.IsZero()
}

// HasPostDate reports whether the post date is present.
func (r *Record) HasPostDate() bool {
	return !r.PostDate.IsZero()
}

// HasAmount reports whether the amount was parsed successfully.
func (r *Record) HasAmount() bool {
	return r.Amount != nil
}

// AbsAmount returns the absolute amount rounded to two decimal places, the
// form used in match keys. Callers must gate on HasAmount first; a nil
// amount yields the zero decimal.
func (r *Record) AbsAmount() decimal.Decimal {
	if r.Amount == nil {
		return decimal.Zero
	}
	return r.Amount.Abs().Round(2)
}

// BestDate returns the transaction date when present, otherwise the post
// date. For aggregator records, whose single source date is stored in both
// fields, this is simply that date.
func (r *Record) BestDate() time.Time {
	if r.HasTransactionDate() {
		return r.TransactionDate
	}
	return r.PostDate
}
