package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciler/core/ledger"
)

// TestParseDate covers every supported source layout plus the failure path.
func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso", input: "2024-03-16", want: "2024-03-16"},
		{name: "iso with time component", input: "2024-03-16 14:22:01", want: "2024-03-16"},
		{name: "us format", input: "03/16/2024", want: "2024-03-16"},
		{name: "us format single digits", input: "3/6/2024", want: "2024-03-06"},
		{name: "uk format", input: "16-03-2024", want: "2024-03-16"},
		{name: "compact", input: "20240316", want: "2024-03-16"},
		{name: "short year", input: "3/16/24", want: "2024-03-16"},
		{name: "whitespace trimmed", input: "  2024-03-16  ", want: "2024-03-16"},
		{name: "empty is absent not error", input: "", want: ""},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "impossible month", input: "13/45/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ledger.ErrUnparseableDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ledger.FormatDate(got))
		})
	}
}
