// Package history persists reconciliation runs to the database.
//
// Each run stores the input sources, the match counts, the match rate and a
// status. The store degrades to a no-op when no database connection is
// available, which keeps local CLI runs dependency-free.
package history
