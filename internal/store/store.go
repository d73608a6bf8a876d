// Package store persists fetched signal snapshots to sqlite so the chart
// can fall back to the last good dataset when the remote API is down.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduradarbackend/internal/chart"
)

// ErrNoSnapshot is returned by Latest when nothing has been saved yet.
var ErrNoSnapshot = errors.New("store: no snapshot available")

// Snapshot is one saved fetch result.
type Snapshot struct {
	ID          string    `gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"index"`
	RecordCount int
}

// SnapshotRecord is one raw record row within a snapshot.
type SnapshotRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	SnapshotID         string `gorm:"index"`
	RecordID           string
	Title              string
	Description        string
	SourceURL          string
	Horizon            string
	Domain             string
	Category           string
	ParticipantFlagged bool
}

// SnapshotStore reads and writes snapshots in a sqlite database.
type SnapshotStore struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*SnapshotStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Snapshot{}, &SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Save persists the records as a new snapshot and returns its id.
func (s *SnapshotStore) Save(records []chart.RawRecord) (string, error) {
	snapshotID := uuid.NewString()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		snap := Snapshot{
			ID:          snapshotID,
			CreatedAt:   time.Now().UTC(),
			RecordCount: len(records),
		}
		if err := tx.Create(&snap).Error; err != nil {
			return err
		}
		for _, rec := range records {
			row := SnapshotRecord{
				SnapshotID:         snapshotID,
				RecordID:           rec.ID,
				Title:              rec.Title,
				Description:        rec.Description,
				SourceURL:          rec.SourceURL,
				Horizon:            rec.Horizon,
				Domain:             rec.Domain,
				Category:           rec.Category,
				ParticipantFlagged: rec.ParticipantFlagged,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("store: save snapshot: %w", err)
	}
	return snapshotID, nil
}

// Latest returns the records of the most recent snapshot, preserving their
// original order.
func (s *SnapshotStore) Latest() ([]chart.RawRecord, error) {
	var snap Snapshot
	err := s.db.Order("created_at desc").First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}

	var rows []SnapshotRecord
	if err := s.db.Where("snapshot_id = ?", snap.ID).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: load snapshot rows: %w", err)
	}

	records := make([]chart.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, chart.RawRecord{
			ID:                 row.RecordID,
			Title:              row.Title,
			Description:        row.Description,
			SourceURL:          row.SourceURL,
			Horizon:            row.Horizon,
			Domain:             row.Domain,
			Category:           row.Category,
			ParticipantFlagged: row.ParticipantFlagged,
		})
	}
	return records, nil
}

// Prune deletes every snapshot older than the given timestamp and returns
// the number removed.
func (s *SnapshotStore) Prune(olderThan time.Time) (int, error) {
	var stale []Snapshot
	if err := s.db.Where("created_at < ?", olderThan).Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("store: prune lookup: %w", err)
	}
	for _, snap := range stale {
		if err := s.db.Where("snapshot_id = ?", snap.ID).Delete(&SnapshotRecord{}).Error; err != nil {
			return 0, fmt.Errorf("store: prune rows: %w", err)
		}
		if err := s.db.Delete(&snap).Error; err != nil {
			return 0, fmt.Errorf("store: prune snapshot: %w", err)
		}
	}
	return len(stale), nil
}
