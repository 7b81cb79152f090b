package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciler/core/ledger"
)

// TestParseAmount covers currency cleaning and the two failure modes.
func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "123.45", want: "123.45"},
		{name: "negative", input: "-123.45", want: "-123.45"},
		{name: "currency symbol", input: "$123.45", want: "123.45"},
		{name: "thousands separators", input: "$1,234,567.89", want: "1234567.89"},
		{name: "whitespace", input: "  42.00 ", want: "42.00"},
		{name: "missing", input: "", wantErr: ledger.ErrMissingRequiredField},
		{name: "blank", input: "   ", wantErr: ledger.ErrMissingRequiredField},
		{name: "garbage", input: "N/A", wantErr: ledger.ErrUnparseableAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// TestParseDebitCredit verifies the sign convention for split-column
// layouts: debits negative, credits positive.
func TestParseDebitCredit(t *testing.T) {
	debit, issue := parseDebitCredit("45.00", "", 0)
	require.Nil(t, issue)
	assert.Equal(t, "-45.00", debit.StringFixed(2))

	credit, issue := parseDebitCredit("", "100.00", 0)
	require.Nil(t, issue)
	assert.Equal(t, "100.00", credit.StringFixed(2))

	// Neither column populated degrades the record.
	amount, issue := parseDebitCredit("", "", 3)
	assert.Nil(t, amount)
	require.NotNil(t, issue)
	assert.Equal(t, 3, issue.Row)
	assert.ErrorIs(t, issue.Err, ledger.ErrMissingRequiredField)
}

// TestParseSignedAmount_Invert verifies exports that report debits as
// positive numbers come out negative.
func TestParseSignedAmount_Invert(t *testing.T) {
	amount, issue := parseSignedAmount("$12.50", true, 0, "Amount")
	require.Nil(t, issue)
	assert.Equal(t, "-12.50", amount.StringFixed(2))

	// A refund reported as negative flips to a positive credit.
	refund, issue := parseSignedAmount("-20.00", true, 0, "Amount")
	require.Nil(t, issue)
	assert.Equal(t, "20.00", refund.StringFixed(2))
}
