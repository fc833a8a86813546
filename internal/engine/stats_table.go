package engine

import "github.com/jstittsworth/matchup-optimizer/internal/models"

// StatsTable wraps a fetched stat table with a normalized-name index so
// roster matching is a map lookup instead of a scan per roster player.
type StatsTable struct {
	rows   []models.PlayerStatRecord
	byName map[string]int
}

// NewStatsTable indexes the rows by normalized display name, filling in
// NormName where the source left it empty. On a normalized-name collision
// the first row wins, matching first-match lookup semantics.
func NewStatsTable(rows []models.PlayerStatRecord) *StatsTable {
	t := &StatsTable{
		rows:   rows,
		byName: make(map[string]int, len(rows)),
	}
	for i := range t.rows {
		if t.rows[i].NormName == "" {
			t.rows[i].NormName = NormalizeName(t.rows[i].Name)
		}
		if _, exists := t.byName[t.rows[i].NormName]; !exists {
			t.byName[t.rows[i].NormName] = i
		}
	}
	return t
}

// Lookup returns the stat row for a normalized name.
func (t *StatsTable) Lookup(normName string) (models.PlayerStatRecord, bool) {
	i, ok := t.byName[normName]
	if !ok {
		return models.PlayerStatRecord{}, false
	}
	return t.rows[i], true
}

// Rows returns all rows in source order.
func (t *StatsTable) Rows() []models.PlayerStatRecord {
	return t.rows
}

// Len returns the number of rows in the table.
func (t *StatsTable) Len() int {
	return len(t.rows)
}
