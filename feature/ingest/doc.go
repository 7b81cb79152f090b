// Package ingest normalizes heterogeneous institution exports into canonical
// ledger records.
//
// Each supported tabular layout is handled by one Adapter: a pure function
// from raw CSV rows to canonical records, plus a header-based Detect so the
// loader can pick the right adapter for an arbitrary export. The set of
// adapters is closed; the engine downstream neither knows nor cares how many
// exist.
//
// Adapters own all raw-text concerns: date-layout normalization, currency
// cleaning, newline stripping, and the debit/credit sign convention
// (negative = money leaving the account). Cell-level parse failures degrade
// the affected record (nil amount, zero date) and surface as ParseIssues for
// logging; they never fail the file.
//
// The Loader adds file and folder plumbing with per-file failure tolerance:
// a malformed file is skipped and logged, the remaining files still feed the
// engine.
package ingest
