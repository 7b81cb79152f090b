// Package report turns engine results into run summaries and exports.
//
// # Components
//
//   - Summarize: aggregate counts and match rate for one run.
//   - Render / RenderUnmatched: terminal tables for the CLI.
//   - WriteCSV: the assembled output rows as a CSV stream, suitable for
//     writing to disk or archiving in the storage bucket.
package report
