// Package ledger defines the canonical transaction record shared by every
// format adapter and the reconciliation engine, together with the match-key
// derivation rules.
//
// A canonical record is the common shape that per-institution statement rows
// (detail records) and consolidated-ledger rows (aggregator records) are
// normalized into before matching. Records are immutable once produced by an
// adapter; the engine only annotates them with match status.
//
// # Match keys
//
// A match key is the tuple (prefix, date, absolute amount rounded to two
// decimal places). Post-date keys are authoritative and are attempted before
// transaction-date keys. Records that end up without a partner are assigned
// an Unmatched key. The external string rendering is:
//
//	{PostDate|TransactionDate|Unmatched}:{YYYY-MM-DD}_{amount, 2 decimals}
//
// Matching itself works on the structured tuple; the string form exists only
// for writers and reports.
package ledger
