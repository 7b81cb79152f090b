package report

import (
	"time"

	"ledger-reconciler/core/reconcile"
)

// Summary holds the aggregate outcome of one reconciliation run.
type Summary struct {
	RunAt               time.Time `json:"run_at"`
	DetailTotal         int       `json:"detail_total"`
	AggregatorTotal     int       `json:"aggregator_total"`
	Matched             int       `json:"matched"`
	UnmatchedDetail     int       `json:"unmatched_detail"`
	UnmatchedAggregator int       `json:"unmatched_aggregator"`
	// MatchRate is the share of detail records that found a partner,
	// in percent. Zero when there were no detail records.
	MatchRate float64 `json:"match_rate"`
}

// Summarize computes run statistics from an engine result.
func Summarize(res reconcile.Result) Summary {
	s := Summary{
		RunAt:               time.Now().UTC(),
		Matched:             len(res.Matches),
		UnmatchedDetail:     len(res.UnmatchedDetail),
		UnmatchedAggregator: len(res.UnmatchedAggregator),
	}
	s.DetailTotal = s.Matched + s.UnmatchedDetail
	s.AggregatorTotal = s.Matched + s.UnmatchedAggregator

	if s.DetailTotal > 0 {
		s.MatchRate = float64(s.Matched) / float64(s.DetailTotal) * 100
	}
	return s
}
