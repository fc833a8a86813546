package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

type fakeProvider struct {
	stats       []models.PlayerStatRecord
	schedule    []models.ScheduleEntry
	statsErr    error
	scheduleErr error
}

func (f *fakeProvider) FetchPlayerStats(ctx context.Context, lookback models.Lookback, current time.Time) ([]models.PlayerStatRecord, error) {
	return f.stats, f.statsErr
}

func (f *fakeProvider) FetchWeeklySchedule(ctx context.Context, weekStart time.Time) ([]models.ScheduleEntry, error) {
	return f.schedule, f.scheduleErr
}

type fakeSnapshotter struct {
	savedStats    []models.PlayerStatRecord
	savedSchedule []models.ScheduleEntry
	stats         []models.PlayerStatRecord
	schedule      []models.ScheduleEntry
}

func (f *fakeSnapshotter) SavePlayerStats(rows []models.PlayerStatRecord) error {
	f.savedStats = rows
	return nil
}

func (f *fakeSnapshotter) LoadPlayerStats() ([]models.PlayerStatRecord, time.Time, error) {
	return f.stats, time.Now(), nil
}

func (f *fakeSnapshotter) SaveSchedule(entries []models.ScheduleEntry) error {
	f.savedSchedule = entries
	return nil
}

func (f *fakeSnapshotter) LoadSchedule() ([]models.ScheduleEntry, time.Time, error) {
	return f.schedule, time.Now(), nil
}

func TestDataServiceRefreshesSnapshotOnSuccess(t *testing.T) {
	provider := &fakeProvider{
		stats: []models.PlayerStatRecord{{PlayerID: 1, Name: "Jamal Murray", Team: "DEN"}},
	}
	snap := &fakeSnapshotter{}
	svc := NewDataService(provider, snap, logrus.New())

	rows, err := svc.PlayerStats(context.Background(), models.LookbackSeason, time.Now())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, rows, snap.savedStats)
}

func TestDataServiceFallsBackToSnapshot(t *testing.T) {
	provider := &fakeProvider{statsErr: errors.New("api down")}
	snap := &fakeSnapshotter{
		stats: []models.PlayerStatRecord{{PlayerID: 2, Name: "Aaron Gordon", Team: "DEN"}},
	}
	svc := NewDataService(provider, snap, logrus.New())

	rows, err := svc.PlayerStats(context.Background(), models.LookbackSeason, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Aaron Gordon", rows[0].Name)
}

func TestDataServiceErrorWithoutSnapshot(t *testing.T) {
	provider := &fakeProvider{statsErr: errors.New("api down")}
	svc := NewDataService(provider, nil, logrus.New())

	_, err := svc.PlayerStats(context.Background(), models.LookbackSeason, time.Now())
	assert.Error(t, err)
}

func TestDataServiceEmptySnapshotDoesNotMaskError(t *testing.T) {
	provider := &fakeProvider{scheduleErr: errors.New("api down")}
	snap := &fakeSnapshotter{}
	svc := NewDataService(provider, snap, logrus.New())

	_, err := svc.Schedule(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestDataServiceScheduleFallback(t *testing.T) {
	provider := &fakeProvider{scheduleErr: errors.New("api down")}
	snap := &fakeSnapshotter{
		schedule: []models.ScheduleEntry{{Team: "DEN", Date: time.Now()}},
	}
	svc := NewDataService(provider, snap, logrus.New())

	entries, err := svc.Schedule(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
