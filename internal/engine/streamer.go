package engine

import (
	"math"
	"sort"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// DefaultStreamerLimit caps how many ranked candidates are kept.
const DefaultStreamerLimit = 10

// categoryWeights is the fixed linear weighting used to score streamer
// candidates. Unknown categories default to 1.0.
var categoryWeights = map[models.Category]float64{
	models.CategoryPTS:  1.0,
	models.CategoryREB:  1.2,
	models.CategoryAST:  1.5,
	models.CategoryFG3M: 2.0,
	models.CategorySTL:  3.0,
	models.CategoryBLK:  3.0,
	models.CategoryTOV:  -1.0,
}

func categoryWeight(cat models.Category) float64 {
	if w, ok := categoryWeights[cat]; ok {
		return w
	}
	return 1.0
}

// RankStreamers scores every unrostered player with games left against
// the target categories and returns the top candidates by descending
// score. Rostered players (either side) and players on teams with no
// games remaining are excluded. The sort is stable so score ties keep
// the stats table's row order.
func RankStreamers(
	table *StatsTable,
	rosteredNames []string,
	gr GamesRemaining,
	targets []models.Category,
	limit int,
) []models.StreamerCandidate {
	rostered := make(map[string]struct{}, len(rosteredNames))
	for _, name := range rosteredNames {
		rostered[NormalizeName(name)] = struct{}{}
	}

	var candidates []models.StreamerCandidate
	for _, row := range table.Rows() {
		if _, taken := rostered[row.NormName]; taken {
			continue
		}
		gamesLeft := gr.Games(row.Team)
		if gamesLeft == 0 {
			continue
		}

		g := float64(gamesLeft)
		score := 0.0
		projected := make(map[models.Category]float64, len(targets))
		for _, cat := range targets {
			val := row.CountingValue(cat)
			score += val * g * categoryWeight(cat)
			projected[cat] = math.Round(val*g*10) / 10
		}

		candidates = append(candidates, models.StreamerCandidate{
			PlayerID:  row.PlayerID,
			Name:      row.Name,
			Team:      row.Team,
			GamesLeft: gamesLeft,
			Score:     score,
			Projected: projected,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
