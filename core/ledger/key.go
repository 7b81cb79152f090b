package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// KeyPrefix encodes the provenance of a match key.
type KeyPrefix string

const (
	// PrefixPostDate marks a key built from a post date. Post-date keys are
	// authoritative and short-circuit further candidates.
	PrefixPostDate KeyPrefix = "PostDate"
	// PrefixTransactionDate marks a key built from a transaction date.
	PrefixTransactionDate KeyPrefix = "TransactionDate"
	// PrefixUnmatched marks the final key of a record that found no partner.
	PrefixUnmatched KeyPrefix = "Unmatched"
)

// DateLayout is the wire format for all dates in rendered keys and output rows.
const DateLayout = "2006-01-02"

// MatchKey is the structured tuple the engine matches on.
type MatchKey struct {
	// Prefix is the key provenance.
	Prefix KeyPrefix

	// Date is the calendar date component. Zero when the record carried no
	// usable date.
	Date time.Time

	// Amount is the absolute amount rounded to two decimal places.
	Amount decimal.Decimal
}

// String renders the external key identifier:
// {prefix}:{YYYY-MM-DD}_{amount, 2 decimals, no sign}.
// A missing date renders as an empty date segment.
func (k MatchKey) String() string {
	return string(k.Prefix) + ":" + k.Bucket()
}

// Bucket returns the prefixless {date}_{amount} portion of the key. Two
// records land in the same index bucket exactly when their buckets are equal,
// so this is the map key the engine's FIFO queues are grouped under.
func (k MatchKey) Bucket() string {
	return FormatDate(k.Date) + "_" + k.Amount.StringFixed(2)
}

// FormatDate renders a date as YYYY-MM-DD, or the empty string for the zero
// time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// CandidateKeys derives the ordered list of keys to attempt for a record,
// most authoritative first:
//
//   - Detail with both dates: post-date key, then transaction-date key.
//   - Detail with one date: a single key using whichever prefix matches the
//     available date.
//   - Aggregator: a single post-date key. The aggregator's one source date
//     is treated as its post date for matching purposes.
//
// Records without any date, or without a parsed amount, yield no candidates.
func CandidateKeys(r *Record) []MatchKey {
	if !r.HasAmount() {
		return nil
	}
	amount := r.AbsAmount()

	if r.Origin == OriginAggregator {
		date := r.BestDate()
		if date.IsZero() {
			return nil
		}
		return []MatchKey{{Prefix: PrefixPostDate, Date: date, Amount: amount}}
	}

	keys := make([]MatchKey, 0, 2)
	if r.HasPostDate() {
		keys = append(keys, MatchKey{Prefix: PrefixPostDate, Date: r.PostDate, Amount: amount})
	}
	if r.HasTransactionDate() {
		keys = append(keys, MatchKey{Prefix: PrefixTransactionDate, Date: r.TransactionDate, Amount: amount})
	}
	return keys
}

// UnmatchedKey builds the final key for a record that found no partner:
// the transaction date for detail records, the single date for aggregator
// records. Post date stands in when a detail record has no transaction date.
func UnmatchedKey(r *Record) MatchKey {
	date := r.BestDate()
	return MatchKey{Prefix: PrefixUnmatched, Date: date, Amount: r.AbsAmount()}
}
