package reconcile

import (
	"ledger-reconciler/core/ledger"
)

// Reconcile pairs detail records with aggregator records. Both sequences
// must be fully materialized and ordered by original file position; the
// engine neither blocks nor mutates its inputs beyond match annotation.
//
// Matches are mutually exclusive and deterministic: re-running on the same
// two sequences yields the identical match set. Reordering an input can
// change which records inside a same-key group pair up (FIFO depends on
// position) but never the match count for a given multiset of keys.
//
// When the detail sequence holds two records with an identical key and the
// aggregator holds only one, exactly one detail record matches and the other
// is reported unmatched. That is the expected outcome, not an error.
func Reconcile(detail, aggregator []ledger.Record, opts Options) Result {
	p := newPool(aggregator)

	res := Result{Matches: make([]Match, 0, len(detail))}

	// Highest aggregator index matched so far; only consulted in strict
	// order mode, where matches must advance through the aggregator file.
	floor := -1

	for i := range detail {
		d := &detail[i]

		if !d.HasAmount() {
			res.UnmatchedDetail = append(res.UnmatchedDetail, Unmatched{
				Record: d,
				Key:    ledger.UnmatchedKey(d),
				Reason: UnmatchedMissingAmount,
			})
			continue
		}

		candidates := ledger.CandidateKeys(d)
		if len(candidates) == 0 {
			res.UnmatchedDetail = append(res.UnmatchedDetail, Unmatched{
				Record: d,
				Key:    ledger.UnmatchedKey(d),
				Reason: UnmatchedMissingDate,
			})
			continue
		}

		matched := false
		for _, key := range candidates {
			popFloor := -1
			if opts.StrictOrder {
				popFloor = floor
			}
			idx, ok := p.pop(key, popFloor)
			if !ok {
				continue
			}

			p.take(idx)
			if idx > floor {
				floor = idx
			}
			res.Matches = append(res.Matches, Match{
				Detail:     d,
				Aggregator: &aggregator[idx],
				Key:        key,
			})
			// A post-date hit short-circuits here: the transaction-date
			// candidate is never evaluated once the first key matches.
			matched = true
			break
		}

		if !matched {
			res.UnmatchedDetail = append(res.UnmatchedDetail, Unmatched{
				Record: d,
				Key:    ledger.UnmatchedKey(d),
				Reason: UnmatchedNoCandidate,
			})
		}
	}

	for i := range aggregator {
		if p.taken(i) {
			continue
		}
		a := &aggregator[i]

		reason := UnmatchedNoCandidate
		switch {
		case !a.HasAmount():
			reason = UnmatchedMissingAmount
		case a.BestDate().IsZero():
			reason = UnmatchedMissingDate
		}

		res.UnmatchedAggregator = append(res.UnmatchedAggregator, Unmatched{
			Record: a,
			Key:    ledger.UnmatchedKey(a),
			Reason: reason,
		})
	}

	return res
}
