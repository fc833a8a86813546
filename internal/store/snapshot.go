package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// SnapshotStore keeps the last successful stats and schedule fetch in a
// local sqlite file so a run can still produce a report when the remote
// API is down. Each save replaces the previous snapshot wholesale.
type SnapshotStore struct {
	db *gorm.DB
}

// fetchMeta records when each snapshot kind was last written.
type fetchMeta struct {
	Kind      string    `gorm:"primaryKey"`
	FetchedAt time.Time `gorm:"not null"`
}

func (fetchMeta) TableName() string {
	return "fetch_meta"
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*SnapshotStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	if err := db.AutoMigrate(&models.PlayerStatRecord{}, &models.ScheduleEntry{}, &fetchMeta{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot db: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// SavePlayerStats replaces the stored stat snapshot.
func (s *SnapshotStore) SavePlayerStats(rows []models.PlayerStatRecord) error {
	return s.replace("playerstats", &models.PlayerStatRecord{}, func(tx *gorm.DB) error {
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// LoadPlayerStats returns the stored stat snapshot and when it was taken.
func (s *SnapshotStore) LoadPlayerStats() ([]models.PlayerStatRecord, time.Time, error) {
	var rows []models.PlayerStatRecord
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load stat snapshot: %w", err)
	}
	return rows, s.fetchedAt("playerstats"), nil
}

// SaveSchedule replaces the stored schedule snapshot.
func (s *SnapshotStore) SaveSchedule(entries []models.ScheduleEntry) error {
	return s.replace("schedule", &models.ScheduleEntry{}, func(tx *gorm.DB) error {
		if len(entries) == 0 {
			return nil
		}
		cleared := make([]models.ScheduleEntry, len(entries))
		copy(cleared, entries)
		for i := range cleared {
			cleared[i].ID = 0
		}
		return tx.Create(&cleared).Error
	})
}

// LoadSchedule returns the stored schedule snapshot and when it was taken.
func (s *SnapshotStore) LoadSchedule() ([]models.ScheduleEntry, time.Time, error) {
	var entries []models.ScheduleEntry
	if err := s.db.Find(&entries).Error; err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load schedule snapshot: %w", err)
	}
	return entries, s.fetchedAt("schedule"), nil
}

func (s *SnapshotStore) replace(kind string, model interface{}, insert func(tx *gorm.DB) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if err := insert(tx); err != nil {
			return err
		}
		meta := fetchMeta{Kind: kind, FetchedAt: time.Now().UTC()}
		return tx.Save(&meta).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", kind, err)
	}
	return nil
}

func (s *SnapshotStore) fetchedAt(kind string) time.Time {
	var meta fetchMeta
	if err := s.db.First(&meta, "kind = ?", kind).Error; err != nil {
		return time.Time{}
	}
	return meta.FetchedAt
}
