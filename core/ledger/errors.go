package ledger

import "errors"

// Sentinel errors for the record-level failure taxonomy. Adapters raise the
// parse errors while normalizing raw rows; the engine raises
// ErrInvalidRecordForMatching when an already-canonical record cannot take
// part in matching. Per-record failures degrade that single record to
// unmatched-with-diagnostic and never abort a batch.
var (
	// ErrUnparseableAmount indicates an amount cell that could not be parsed
	// into a decimal after currency-symbol and separator cleaning.
	ErrUnparseableAmount = errors.New("unparseable amount")

	// ErrUnparseableDate indicates a date cell that matched none of the
	// supported layouts.
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrMissingRequiredField indicates a source row lacking a column the
	// format requires.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidRecordForMatching indicates a canonical record that reached
	// the engine without a usable date or amount, so no key can be built.
	ErrInvalidRecordForMatching = errors.New("record not usable for matching")
)
