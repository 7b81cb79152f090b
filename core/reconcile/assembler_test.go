package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciler/core/ledger"
)

// TestAssembleMatch_AggregatorPrecedence verifies the aggregator's values
// win for every field they carry, with the detail record as fallback.
func TestAssembleMatch_AggregatorPrecedence(t *testing.T) {
	det := detail(t, 0, "2024-03-15", "2024-03-16", "-123.45")
	det.Description = "CARD PURCHASE 1234"
	det.Category = "uncategorized"
	det.Account = "visa"

	aggRec := agg(t, 0, "2024-03-16", "-123.45")
	aggRec.Description = "Coffee Shop"
	aggRec.Category = "Dining"
	aggRec.Tags = "work"
	aggRec.Account = "" // falls back to the detail side

	row := AssembleMatch(Match{
		Detail:     &det,
		Aggregator: &aggRec,
		Key: ledger.MatchKey{
			Prefix: ledger.PrefixPostDate,
			Date:   aggRec.PostDate,
			Amount: aggRec.AbsAmount(),
		},
	})

	assert.Equal(t, "2024-03-16", row.Date)
	assert.Equal(t, "2024-03", row.YearMonth)
	assert.Equal(t, "Coffee Shop", row.Description)
	assert.Equal(t, "Dining", row.Category)
	assert.Equal(t, "work", row.Tags)
	assert.Equal(t, "visa", row.Account)
	require.NotNil(t, row.Amount)
	assert.Equal(t, "-123.45", row.Amount.StringFixed(2))
	assert.Equal(t, "PostDate:2024-03-16_123.45", row.ReconciledKey)
	assert.True(t, row.Matched)
	assert.Empty(t, row.Diagnostic)
}

// TestAssembleUnmatched_Detail verifies detail-only rows take every field
// from the record and never carry tags.
func TestAssembleUnmatched_Detail(t *testing.T) {
	det := detail(t, 3, "2024-03-17", "2024-03-18", "-45.00")
	det.Description = "GROCERY STORE"
	det.Tags = "should-not-appear"

	row := AssembleUnmatched(Unmatched{
		Record: &det,
		Key:    ledger.UnmatchedKey(&det),
		Reason: UnmatchedNoCandidate,
	})

	assert.Equal(t, "2024-03-17", row.Date)
	assert.Equal(t, "2024-03", row.YearMonth)
	assert.Equal(t, "GROCERY STORE", row.Description)
	assert.Empty(t, row.Tags)
	assert.Equal(t, "Unmatched:2024-03-17_45.00", row.ReconciledKey)
	assert.False(t, row.Matched)
	assert.Equal(t, string(UnmatchedNoCandidate), row.Diagnostic)
}

// TestAssembleUnmatched_AggregatorKeepsTags verifies aggregator-side
// unmatched rows retain their tags.
func TestAssembleUnmatched_AggregatorKeepsTags(t *testing.T) {
	aggRec := agg(t, 2, "2024-03-19", "-99.99")
	aggRec.Tags = "subscription"

	row := AssembleUnmatched(Unmatched{
		Record: &aggRec,
		Key:    ledger.UnmatchedKey(&aggRec),
		Reason: UnmatchedNoCandidate,
	})

	assert.Equal(t, "subscription", row.Tags)
	assert.Equal(t, "Unmatched:2024-03-19_99.99", row.ReconciledKey)
}

// TestAssembleUnmatched_MissingAmount verifies a nil amount stays nil in the
// output instead of turning into a false zero.
func TestAssembleUnmatched_MissingAmount(t *testing.T) {
	det := detail(t, 0, "2024-03-20", "", "")

	row := AssembleUnmatched(Unmatched{
		Record: &det,
		Key:    ledger.UnmatchedKey(&det),
		Reason: UnmatchedMissingAmount,
	})

	assert.Nil(t, row.Amount)
	assert.Equal(t, string(UnmatchedMissingAmount), row.Diagnostic)
	assert.Equal(t, "Unmatched:2024-03-20_0.00", row.ReconciledKey)
}

// TestAssemble_CoversWholeResult verifies one row per input record, matches
// first.
func TestAssemble_CoversWholeResult(t *testing.T) {
	details := []ledger.Record{
		detail(t, 0, "2024-03-15", "2024-03-16", "-123.45"),
		detail(t, 1, "2024-03-17", "2024-03-18", "-45.00"),
	}
	aggs := []ledger.Record{
		agg(t, 0, "2024-03-16", "-123.45"),
		agg(t, 1, "2024-03-19", "-99.99"),
	}

	rows := Assemble(Reconcile(details, aggs, Options{}))

	require.Len(t, rows, 3)
	assert.True(t, rows[0].Matched)
	assert.False(t, rows[1].Matched)
	assert.False(t, rows[2].Matched)
}
