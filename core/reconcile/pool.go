package reconcile

import (
	"ledger-reconciler/core/ledger"
)

// pool holds the per-invocation FIFO queues of aggregator sequence indices,
// grouped by key bucket. Two indices exist because a detail post-date lookup
// and a detail transaction-date lookup consume from independent queues, even
// though both are built from the aggregator's single date. The pool is owned
// by one Reconcile call and discarded with it.
type pool struct {
	// postQueues maps a key bucket to aggregator indices, for post-date
	// candidate lookups. Queues are ordered by ascending sequence index.
	postQueues map[string][]int

	// txQueues is the same mapping consulted by transaction-date candidates.
	txQueues map[string][]int

	// consumed marks aggregator indices already owned by a match. Shared by
	// both queue sets, so popping from one side retires the record from the
	// other as well.
	consumed []bool
}

// newPool indexes the aggregator sequence. Records without a parsed amount
// or without a date are left out entirely; they can never match and are
// reported unmatched with a diagnostic at the end of the run.
func newPool(aggregator []ledger.Record) *pool {
	p := &pool{
		postQueues: make(map[string][]int),
		txQueues:   make(map[string][]int),
		consumed:   make([]bool, len(aggregator)),
	}

	for i := range aggregator {
		keys := ledger.CandidateKeys(&aggregator[i])
		if len(keys) == 0 {
			continue
		}
		// Aggregator records derive a single key; its bucket is identical
		// for both prefixes since the one source date serves as each.
		bucket := keys[0].Bucket()
		p.postQueues[bucket] = append(p.postQueues[bucket], i)
		p.txQueues[bucket] = append(p.txQueues[bucket], i)
	}

	return p
}

// pop removes and returns the earliest unconsumed aggregator index queued
// under the key, FIFO by sequence index. Entries at or below floor are
// permanently skipped from this queue set (the strict-order mode; pass -1 to
// disable). Returns ok=false when the key has no eligible entry left.
func (p *pool) pop(key ledger.MatchKey, floor int) (int, bool) {
	queues := p.txQueues
	if key.Prefix == ledger.PrefixPostDate {
		queues = p.postQueues
	}

	bucket := key.Bucket()
	q := queues[bucket]
	for len(q) > 0 {
		head := q[0]
		q = q[1:]
		if p.consumed[head] {
			continue
		}
		if head <= floor {
			// Ineligible under the monotonic-position constraint. The floor
			// only grows, so dropping the entry from this queue is final.
			continue
		}
		queues[bucket] = q
		return head, true
	}

	queues[bucket] = q
	return 0, false
}

// take marks the aggregator index as consumed.
func (p *pool) take(i int) {
	p.consumed[i] = true
}

// taken reports whether the aggregator index was consumed by a match.
func (p *pool) taken(i int) bool {
	return p.consumed[i]
}
