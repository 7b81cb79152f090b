package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads a CSV stream into a header row and data rows. Rows with a
// variable number of fields are tolerated; a UTF-8 BOM on the first header
// cell is stripped. An empty stream yields a nil header and no rows.
func ReadCSV(r io.Reader) (header []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header = all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	return header, all[1:], nil
}
