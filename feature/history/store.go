package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store persists reconciliation runs. A nil *gorm.DB disables persistence:
// Save becomes a no-op and List returns nothing, so CLI runs work without a
// database connection.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given connection, which may be nil.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Enabled reports whether runs are actually persisted.
func (s *Store) Enabled() bool {
	return s.db != nil
}

// Save inserts a run record.
func (s *Store) Save(ctx context.Context, run *Run) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Migrate creates the runs table if missing.
func (s *Store) Migrate() error {
	if s.db == nil {
		return nil
	}
	return s.db.AutoMigrate(&Run{})
}
