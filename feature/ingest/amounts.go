package ingest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ledger-reconciler/core/ledger"
)

// ParseAmount normalizes a source amount cell to a signed decimal, stripping
// currency symbols and thousands separators. An empty cell returns
// ledger.ErrMissingRequiredField, an unparseable one
// ledger.ErrUnparseableAmount. Failures are never coerced to zero; the
// caller leaves the record's amount nil so the engine can exclude it from
// indexing.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount", ledger.ErrMissingRequiredField)
	}

	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ledger.ErrUnparseableAmount, s)
	}
	return d, nil
}

// parseSignedAmount is the adapter-side helper for single-amount layouts.
// invert flips the sign for exports that report debits as positive numbers.
// On failure it returns nil and the issue to report.
func parseSignedAmount(raw string, invert bool, row int, field string) (*decimal.Decimal, *ParseIssue) {
	d, err := ParseAmount(raw)
	if err != nil {
		return nil, &ParseIssue{Row: row, Field: field, Err: err}
	}
	if invert {
		d = d.Neg()
	}
	return &d, nil
}

// parseDebitCredit combines separate debit/credit columns into one signed
// amount: debits become negative, credits stay positive. Exactly one of the
// two cells is expected to be populated per row.
func parseDebitCredit(debit, credit string, row int) (*decimal.Decimal, *ParseIssue) {
	if strings.TrimSpace(debit) != "" {
		d, err := ParseAmount(debit)
		if err != nil {
			return nil, &ParseIssue{Row: row, Field: "Debit", Err: err}
		}
		d = d.Abs().Neg()
		return &d, nil
	}

	if strings.TrimSpace(credit) != "" {
		d, err := ParseAmount(credit)
		if err != nil {
			return nil, &ParseIssue{Row: row, Field: "Credit", Err: err}
		}
		d = d.Abs()
		return &d, nil
	}

	return nil, &ParseIssue{
		Row:   row,
		Field: "Debit/Credit",
		Err:   fmt.Errorf("%w: debit or credit", ledger.ErrMissingRequiredField),
	}
}
