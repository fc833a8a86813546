package engine

import "github.com/jstittsworth/matchup-optimizer/internal/models"

// ProjectRoster turns a list of roster names into projected rest-of-week
// rows. Names that match no stat row produce a warning instead of a row;
// an all-unmatched roster is a valid empty result, not an error. Output
// order follows roster order with unmatched names skipped.
func ProjectRoster(
	rosterNames []string,
	table *StatsTable,
	gr GamesRemaining,
	lookback models.Lookback,
) ([]models.ProjectedPlayerRow, []models.UnmatchedWarning) {
	rows := make([]models.ProjectedPlayerRow, 0, len(rosterNames))
	var warnings []models.UnmatchedWarning

	for _, name := range rosterNames {
		normName := NormalizeName(name)
		player, ok := table.Lookup(normName)
		if !ok {
			warnings = append(warnings, models.UnmatchedWarning{
				Name:       name,
				Normalized: normName,
				Lookback:   lookback,
			})
			continue
		}
		rows = append(rows, projectPlayer(player, gr.Games(player.Team)))
	}

	return rows, warnings
}

// projectPlayer multiplies per-game averages by games left.
func projectPlayer(p models.PlayerStatRecord, gamesLeft int) models.ProjectedPlayerRow {
	g := float64(gamesLeft)
	return models.ProjectedPlayerRow{
		Player:    p,
		GamesLeft: gamesLeft,
		Proj: models.Projection{
			FG3M: p.FG3M * g,
			PTS:  p.PTS * g,
			REB:  p.REB * g,
			AST:  p.AST * g,
			STL:  p.STL * g,
			BLK:  p.BLK * g,
			TOV:  p.TOV * g,
			FGM:  p.FGM * g,
			FGA:  p.FGA * g,
			FTM:  p.FTM * g,
			FTA:  p.FTA * g,
		},
	}
}
