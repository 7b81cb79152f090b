package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// TestCandidateKeys_DetailBothDates verifies the post-date key is listed
// first when a detail record carries both dates.
func TestCandidateKeys_DetailBothDates(t *testing.T) {
	r := Record{
		Origin:          OriginDetail,
		TransactionDate: day(t, "2024-03-15"),
		PostDate:        day(t, "2024-03-16"),
		Amount:          amount("-123.45"),
	}

	keys := CandidateKeys(&r)
	require.Len(t, keys, 2)
	assert.Equal(t, PrefixPostDate, keys[0].Prefix)
	assert.Equal(t, day(t, "2024-03-16"), keys[0].Date)
	assert.Equal(t, PrefixTransactionDate, keys[1].Prefix)
	assert.Equal(t, day(t, "2024-03-15"), keys[1].Date)
	assert.Equal(t, "123.45", keys[0].Amount.StringFixed(2))
}

// TestCandidateKeys_DetailSingleDate verifies a single-element candidate list
// using whichever prefix matches the available date.
func TestCandidateKeys_DetailSingleDate(t *testing.T) {
	tests := []struct {
		name       string
		record     Record
		wantPrefix KeyPrefix
		wantDate   string
	}{
		{
			name: "only post date",
			record: Record{
				Origin:   OriginDetail,
				PostDate: day(t, "2024-04-01"),
				Amount:   amount("-10.00"),
			},
			wantPrefix: PrefixPostDate,
			wantDate:   "2024-04-01",
		},
		{
			name: "only transaction date",
			record: Record{
				Origin:          OriginDetail,
				TransactionDate: day(t, "2024-04-02"),
				Amount:          amount("-10.00"),
			},
			wantPrefix: PrefixTransactionDate,
			wantDate:   "2024-04-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := CandidateKeys(&tt.record)
			require.Len(t, keys, 1)
			assert.Equal(t, tt.wantPrefix, keys[0].Prefix)
			assert.Equal(t, tt.wantDate, FormatDate(keys[0].Date))
		})
	}
}

// TestCandidateKeys_Aggregator verifies aggregator records yield exactly one
// post-date key built from their single source date.
func TestCandidateKeys_Aggregator(t *testing.T) {
	r := Record{
		Origin:          OriginAggregator,
		TransactionDate: day(t, "2024-03-16"),
		PostDate:        day(t, "2024-03-16"),
		Amount:          amount("-67.89"),
	}

	keys := CandidateKeys(&r)
	require.Len(t, keys, 1)
	assert.Equal(t, PrefixPostDate, keys[0].Prefix)
	assert.Equal(t, "2024-03-16", FormatDate(keys[0].Date))
}

// TestCandidateKeys_Unusable verifies records without an amount or without
// any date yield no candidates at all.
func TestCandidateKeys_Unusable(t *testing.T) {
	noAmount := Record{
		Origin:          OriginDetail,
		TransactionDate: day(t, "2024-03-15"),
	}
	assert.Empty(t, CandidateKeys(&noAmount))

	noDates := Record{
		Origin: OriginDetail,
		Amount: amount("-5.00"),
	}
	assert.Empty(t, CandidateKeys(&noDates))
}

// TestMatchKey_String verifies the external key rendering contract.
func TestMatchKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  MatchKey
		want string
	}{
		{
			name: "post date key",
			key: MatchKey{
				Prefix: PrefixPostDate,
				Date:   day(t, "2024-03-16"),
				Amount: decimal.RequireFromString("123.45"),
			},
			want: "PostDate:2024-03-16_123.45",
		},
		{
			name: "amount padded to two decimals",
			key: MatchKey{
				Prefix: PrefixTransactionDate,
				Date:   day(t, "2024-03-17"),
				Amount: decimal.RequireFromString("45"),
			},
			want: "TransactionDate:2024-03-17_45.00",
		},
		{
			name: "unmatched without date",
			key: MatchKey{
				Prefix: PrefixUnmatched,
				Amount: decimal.RequireFromString("99.99"),
			},
			want: "Unmatched:_99.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

// TestUnmatchedKey verifies the fallback key uses the transaction date for
// detail records and the single date for aggregator records.
func TestUnmatchedKey(t *testing.T) {
	detail := Record{
		Origin:          OriginDetail,
		TransactionDate: day(t, "2024-03-17"),
		PostDate:        day(t, "2024-03-18"),
		Amount:          amount("-45.00"),
	}
	assert.Equal(t, "Unmatched:2024-03-17_45.00", UnmatchedKey(&detail).String())

	agg := Record{
		Origin:          OriginAggregator,
		TransactionDate: day(t, "2024-03-19"),
		PostDate:        day(t, "2024-03-19"),
		Amount:          amount("-99.99"),
	}
	assert.Equal(t, "Unmatched:2024-03-19_99.99", UnmatchedKey(&agg).String())
}

// TestRecord_AbsAmount verifies key-side rounding to two decimal places.
func TestRecord_AbsAmount(t *testing.T) {
	r := Record{Amount: amount("-123.456")}
	assert.Equal(t, "123.46", r.AbsAmount().StringFixed(2))

	missing := Record{}
	assert.True(t, missing.AbsAmount().IsZero())
}
