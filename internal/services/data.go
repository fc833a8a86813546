package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// StatsProvider fetches live stat and schedule tables.
type StatsProvider interface {
	FetchPlayerStats(ctx context.Context, lookback models.Lookback, current time.Time) ([]models.PlayerStatRecord, error)
	FetchWeeklySchedule(ctx context.Context, weekStart time.Time) ([]models.ScheduleEntry, error)
}

// Snapshotter persists the last successful fetch for offline fallback.
type Snapshotter interface {
	SavePlayerStats(rows []models.PlayerStatRecord) error
	LoadPlayerStats() ([]models.PlayerStatRecord, time.Time, error)
	SaveSchedule(entries []models.ScheduleEntry) error
	LoadSchedule() ([]models.ScheduleEntry, time.Time, error)
}

// DataService fronts the stats provider with snapshot fallback: a
// successful fetch refreshes the snapshot, a failed fetch falls back to
// the previous snapshot when one exists.
type DataService struct {
	provider StatsProvider
	store    Snapshotter
	logger   *logrus.Logger
}

func NewDataService(provider StatsProvider, store Snapshotter, logger *logrus.Logger) *DataService {
	return &DataService{
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// PlayerStats returns the stat table for the lookback window.
func (s *DataService) PlayerStats(ctx context.Context, lookback models.Lookback, current time.Time) ([]models.PlayerStatRecord, error) {
	rows, err := s.provider.FetchPlayerStats(ctx, lookback, current)
	if err != nil {
		if fallback, ok := s.statsFallback(err); ok {
			return fallback, nil
		}
		return nil, err
	}

	if s.store != nil {
		if serr := s.store.SavePlayerStats(rows); serr != nil {
			s.logger.Warnf("Failed to snapshot player stats: %v", serr)
		}
	}
	return rows, nil
}

// Schedule returns the schedule entries for the week starting at weekStart.
func (s *DataService) Schedule(ctx context.Context, weekStart time.Time) ([]models.ScheduleEntry, error) {
	entries, err := s.provider.FetchWeeklySchedule(ctx, weekStart)
	if err != nil {
		if fallback, ok := s.scheduleFallback(err); ok {
			return fallback, nil
		}
		return nil, err
	}

	if s.store != nil {
		if serr := s.store.SaveSchedule(entries); serr != nil {
			s.logger.Warnf("Failed to snapshot schedule: %v", serr)
		}
	}
	return entries, nil
}

func (s *DataService) statsFallback(cause error) ([]models.PlayerStatRecord, bool) {
	if s.store == nil {
		return nil, false
	}
	rows, fetchedAt, err := s.store.LoadPlayerStats()
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	s.logger.Warnf("Stats fetch failed (%v); using snapshot from %s", cause, fetchedAt.Format(time.RFC3339))
	return rows, true
}

func (s *DataService) scheduleFallback(cause error) ([]models.ScheduleEntry, bool) {
	if s.store == nil {
		return nil, false
	}
	entries, fetchedAt, err := s.store.LoadSchedule()
	if err != nil || len(entries) == 0 {
		return nil, false
	}
	s.logger.Warnf("Schedule fetch failed (%v); using snapshot from %s", cause, fetchedAt.Format(time.RFC3339))
	return entries, true
}
