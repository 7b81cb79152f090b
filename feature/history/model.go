package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run is one persisted reconciliation run.
type Run struct {
	ID                  string    `gorm:"type:char(36);primaryKey" json:"id"`
	DetailSource        string    `gorm:"size:255" json:"detail_source"`
	AggregatorSource    string    `gorm:"size:255" json:"aggregator_source"`
	DetailTotal         int       `json:"detail_total"`
	AggregatorTotal     int       `json:"aggregator_total"`
	Matched             int       `json:"matched"`
	UnmatchedDetail     int       `json:"unmatched_detail"`
	UnmatchedAggregator int       `json:"unmatched_aggregator"`
	MatchRate           float64   `json:"match_rate"`
	Status              string    `gorm:"size:32" json:"status"`
	Error               string    `gorm:"size:1024" json:"error,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// TableName keeps the table name explicit rather than GORM-derived.
func (Run) TableName() string {
	return "reconciliation_runs"
}

// BeforeCreate assigns the run ID when the caller did not.
func (r *Run) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
