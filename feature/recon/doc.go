// Package recon orchestrates reconciliation runs end to end.
//
// It loads detail and aggregator exports (from disk for CLI runs, from the
// storage bucket for HTTP runs), feeds them through the matching engine,
// assembles the output rows, persists the run record and archives the CSV
// report back to the bucket.
//
// # Components
//
//   - Service: Orchestrates loading, matching, assembly, history and archiving.
//   - Handler: Exposes HTTP endpoints for running reconciliations and listing runs.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /reconcile       : Run a reconciliation over bucket objects.
//   - GET  /reconcile/runs  : List recent runs.
package recon
