package ingest

import (
	"fmt"
	"strings"

	"ledger-reconciler/core/ledger"
)

// Adapter converts one institution's tabular layout into canonical records.
// Implementations are stateless and pure; the loader owns I/O and logging.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g. "discover").
	Name() string

	// Detect reports whether the header row belongs to this format.
	Detect(header []string) bool

	// Parse converts raw data rows into canonical records, in row order.
	// Cell-level failures degrade the affected record and are reported as
	// issues; Parse never fails wholesale.
	Parse(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue)
}

// ParseIssue describes a single cell that could not be normalized.
type ParseIssue struct {
	// Row is the 0-based data row index within the source file.
	Row int

	// Field is the source column the failure occurred in.
	Field string

	// Err is the failure, wrapping one of the ledger sentinel errors.
	Err error
}

func (i ParseIssue) String() string {
	return fmt.Sprintf("row %d, field %q: %v", i.Row, i.Field, i.Err)
}

// columns maps trimmed header names to their positions for cell lookups.
type columns map[string]int

func indexColumns(header []string) columns {
	c := make(columns, len(header))
	for i, name := range header {
		c[strings.TrimSpace(name)] = i
	}
	return c
}

// has reports whether every named column is present.
func (c columns) has(names ...string) bool {
	for _, n := range names {
		if _, ok := c[n]; !ok {
			return false
		}
	}
	return true
}

// hasAny reports whether at least one named column is present.
func (c columns) hasAny(names ...string) bool {
	for _, n := range names {
		if _, ok := c[n]; ok {
			return true
		}
	}
	return false
}

// cell returns the trimmed value of the named column in a row, or "" when
// the column is absent or the row is short.
func (c columns) cell(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cleanDescription strips newlines from a description, preserving everything
// else byte for byte.
func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
