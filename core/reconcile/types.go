package reconcile

import (
	"ledger-reconciler/core/ledger"
)

// Options controls engine behavior for a single invocation.
type Options struct {
	// StrictOrder additionally constrains matching to be monotonic in
	// aggregator file position: a detail record may only match aggregator
	// records after the previously matched one. The default is plain
	// FIFO-per-key matching with no global order constraint.
	StrictOrder bool `mapstructure:"strict_order" default:"false"`
}

// Match is an ownership link between exactly one detail record and exactly
// one aggregator record, tagged with the key that produced it. A record
// participates in at most one Match.
type Match struct {
	// Detail is the matched detail record.
	Detail *ledger.Record

	// Aggregator is the matched aggregator record.
	Aggregator *ledger.Record

	// Key is the winning candidate key (PostDate or TransactionDate prefix).
	Key ledger.MatchKey
}

// UnmatchReason explains why a record ended up unmatched.
type UnmatchReason string

const (
	// UnmatchedNoCandidate means the record was indexable but no partner
	// with a compatible key remained.
	UnmatchedNoCandidate UnmatchReason = "no_candidate"
	// UnmatchedMissingAmount means the amount was missing or unparseable,
	// so the record was excluded from indexing.
	UnmatchedMissingAmount UnmatchReason = "missing_amount"
	// UnmatchedMissingDate means no usable date was present, so no key
	// could be constructed.
	UnmatchedMissingDate UnmatchReason = "missing_date"
)

// Err maps the reason onto the record-failure taxonomy, or nil for a plain
// no-candidate outcome.
func (r UnmatchReason) Err() error {
	switch r {
	case UnmatchedMissingAmount:
		return ledger.ErrUnparseableAmount
	case UnmatchedMissingDate:
		return ledger.ErrInvalidRecordForMatching
	default:
		return nil
	}
}

// Unmatched is a record that found no partner, annotated with its final
// Unmatched key and the diagnostic reason for manual review.
type Unmatched struct {
	// Record is the unmatched canonical record.
	Record *ledger.Record

	// Key is the record's final Unmatched key.
	Key ledger.MatchKey

	// Reason is the diagnostic explaining why no match was made.
	Reason UnmatchReason
}

// Result is the complete outcome of one reconciliation: every input record
// appears in exactly one of the three sets.
type Result struct {
	// Matches holds the confirmed detail/aggregator pairs.
	Matches []Match

	// UnmatchedDetail holds detail records without a partner.
	UnmatchedDetail []Unmatched

	// UnmatchedAggregator holds aggregator records never consumed.
	UnmatchedAggregator []Unmatched
}
