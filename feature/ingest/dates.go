package ingest

import (
	"fmt"
	"strings"
	"time"

	"ledger-reconciler/core/ledger"
)

// dateLayouts are the supported source layouts, tried in order:
// US MM/DD/YYYY, UK DD-MM-YYYY, compact YYYYMMDD and short-year M/D/YY.
// ISO dates (with or without a trailing time component) are handled first by
// ParseDate itself.
var dateLayouts = []string{
	"1/2/2006",
	"2-1-2006",
	"20060102",
	"1/2/06",
}

// ParseDate normalizes a source date cell to a calendar date. An empty cell
// returns the zero time with no error; a non-empty cell matching no layout
// returns ledger.ErrUnparseableDate.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	// ISO8601, possibly with a time component to discard.
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		if t, err := time.Parse(ledger.DateLayout, s[:10]); err == nil {
			return t, nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ledger.ErrUnparseableDate, s)
}

// parseDateCell parses a date cell for an adapter, appending an issue on
// failure and returning the zero time so the record degrades instead of the
// file.
func parseDateCell(raw string, row int, field string, issues *[]ParseIssue) time.Time {
	t, err := ParseDate(raw)
	if err != nil {
		*issues = append(*issues, ParseIssue{Row: row, Field: field, Err: err})
		return time.Time{}
	}
	return t
}
