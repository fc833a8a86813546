package engine

import (
	"time"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// GamesRemaining maps team abbreviation to games left on or after the
// reference date. Teams with nothing left are absent; consumers read
// through Games which treats a missing team as zero.
type GamesRemaining map[string]int

// BuildGamesRemaining counts schedule rows dated on or after ref, per
// team. The schedule source emits one row per team per game (a game
// between A and B produces an A-row and a B-row on the same date), so a
// plain row count per team is the per-team games-remaining.
func BuildGamesRemaining(entries []models.ScheduleEntry, ref time.Time) GamesRemaining {
	gr := make(GamesRemaining)
	for _, e := range entries {
		if e.Date.Before(ref) {
			continue
		}
		gr[e.Team]++
	}
	return gr
}

// Games returns the games remaining for a team, zero when unknown.
func (gr GamesRemaining) Games(team string) int {
	return gr[team]
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
