package ingest

import (
	"fmt"
	"strings"

	"ledger-reconciler/core/ledger"
)

// ErrUnknownFormat indicates a header row that no registered adapter claims.
var ErrUnknownFormat = fmt.Errorf("unknown file format")

// DetailAdapters returns the closed set of detail-side adapters in detection
// order, most specific layout first. Order matters: the generic layouts
// would otherwise claim institution exports that share their columns.
func DetailAdapters() []Adapter {
	return []Adapter{
		DiscoverAdapter{},
		CapitalOneAdapter{},
		ChaseAdapter{},
		DebitCreditAdapter{},
		PostDateAdapter{},
		AmexAdapter{},
		DateAdapter{},
	}
}

// DetectDetail picks the adapter for a detail export's header row.
func DetectDetail(header []string) (Adapter, error) {
	for _, a := range DetailAdapters() {
		if a.Detect(header) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: columns [%s]", ErrUnknownFormat, strings.Join(header, ", "))
}

// ParseDetail detects the layout and parses rows in one step.
func ParseDetail(header []string, rows [][]string, sourceID string) ([]ledger.Record, []ParseIssue, error) {
	adapter, err := DetectDetail(header)
	if err != nil {
		return nil, nil, err
	}
	records, issues := adapter.Parse(header, rows, sourceID)
	return records, issues, nil
}
