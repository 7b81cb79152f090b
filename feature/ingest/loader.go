package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ledger-reconciler/core/ledger"
)

// Loader reads statement exports from files or streams and normalizes them
// through the adapter registry. Parse issues are logged, not fatal: a bad
// cell degrades its record, a bad file is skipped during folder imports.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a loader that logs through the given logger.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// DetailFromReader normalizes one detail export read from a stream.
// sourceID identifies the stream in records and logs.
func (l *Loader) DetailFromReader(r io.Reader, sourceID string) ([]ledger.Record, error) {
	header, rows, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceID, err)
	}
	if header == nil {
		l.logger.Warn("Empty detail file", zap.String("source", sourceID))
		return nil, nil
	}

	records, issues, err := ParseDetail(header, rows, sourceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceID, err)
	}
	l.logIssues(sourceID, issues)
	return records, nil
}

// DetailFile normalizes one detail export from disk.
func (l *Loader) DetailFile(path string) ([]ledger.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open detail file: %w", err)
	}
	defer f.Close()

	return l.DetailFromReader(f, filepath.Base(path))
}

// DetailFolder normalizes every CSV in a folder, in lexical filename order.
// A failing file is skipped and logged; the remaining files still load.
// An error is returned only when the folder yields no valid file at all.
func (l *Loader) DetailFolder(dir string) ([]ledger.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read detail folder: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var records []ledger.Record
	loaded := 0
	for _, name := range names {
		fileRecords, err := l.DetailFile(filepath.Join(dir, name))
		if err != nil {
			// Partial-failure tolerance at file granularity: keep going.
			l.logger.Error("Skipping detail file", zap.String("file", name), zap.Error(err))
			continue
		}
		if len(fileRecords) == 0 {
			continue
		}
		records = append(records, fileRecords...)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no valid csv files found in %s", dir)
	}

	l.logger.Info("Loaded detail records",
		zap.Int("files", loaded),
		zap.Int("records", len(records)),
	)
	return records, nil
}

// AggregatorFromReader normalizes the consolidated-ledger export read from a
// stream.
func (l *Loader) AggregatorFromReader(r io.Reader, sourceID string) ([]ledger.Record, error) {
	header, rows, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceID, err)
	}
	if header == nil {
		return nil, fmt.Errorf("%s: empty aggregator file", sourceID)
	}

	adapter := AggregatorAdapter{}
	records, issues := adapter.Parse(header, rows, sourceID)
	l.logIssues(sourceID, issues)
	return records, nil
}

// AggregatorFile normalizes the consolidated-ledger export from disk.
func (l *Loader) AggregatorFile(path string) ([]ledger.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open aggregator file: %w", err)
	}
	defer f.Close()

	return l.AggregatorFromReader(f, filepath.Base(path))
}

func (l *Loader) logIssues(sourceID string, issues []ParseIssue) {
	for _, issue := range issues {
		l.logger.Warn("Record degraded by parse failure",
			zap.String("source", sourceID),
			zap.Int("row", issue.Row),
			zap.String("field", issue.Field),
			zap.Error(issue.Err),
		)
	}
}
