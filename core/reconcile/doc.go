// Package reconcile implements the matching engine that pairs detail records
// (per-institution statements) with aggregator records (the consolidated
// ledger), plus the assembler that merges each pair into one output row.
//
// # Algorithm
//
// Reconcile is a deterministic, single-threaded, in-memory batch over two
// finite, ordered sequences:
//
//  1. The aggregator sequence is indexed into per-key FIFO queues of
//     sequence indices, once under post-date keys and once under
//     transaction-date keys (the aggregator's single date serves as both).
//  2. Each detail record, in file order, tries its post-date key first. A hit
//     pops the earliest unconsumed aggregator index from that key's queue and
//     short-circuits: the transaction-date candidate is never evaluated. On a
//     miss the transaction-date key is tried the same way.
//  3. Detail records with no hit, and aggregator records never consumed, are
//     reported unmatched under an Unmatched key.
//
// Ties inside a key group always resolve to the lowest remaining sequence
// index. No description similarity or date-distance scoring is applied.
//
// The queue pool and consumption set live for exactly one Reconcile call, so
// repeated invocations are fully independent. The sequential pass over the
// shared pool is load-bearing and must not be parallelized.
//
// # Diagnostics
//
// Records with a missing or unparseable amount, or with no usable date, are
// excluded from indexing and surface as unmatched with a diagnostic reason.
// They never affect the matching outcome of any other record.
package reconcile
