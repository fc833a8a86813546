package engine

import (
	"math"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// DefaultSwingThreshold is the absolute projected-total difference below
// which a counting category is considered winnable by either side.
const DefaultSwingThreshold = 15.0

// fallbackTargets is used when no category is close enough to swing, so
// the streamer ranker always has something to score against.
var fallbackTargets = []models.Category{
	models.CategoryPTS,
	models.CategoryREB,
	models.CategoryAST,
	models.CategorySTL,
	models.CategoryBLK,
}

// SwingCategories returns the counting categories whose absolute total
// difference is strictly below the threshold. Percentage categories are
// never swing candidates.
func SwingCategories(result models.MatchupResult, threshold float64) []models.Category {
	var swing []models.Category
	for _, cat := range models.CountingCategories {
		line, ok := result.Line(cat)
		if !ok {
			continue
		}
		if math.Abs(line.Diff) < threshold {
			swing = append(swing, cat)
		}
	}
	return swing
}

// TargetCategories substitutes the fixed fallback set when no category
// qualified as a swing category.
func TargetCategories(swing []models.Category) []models.Category {
	if len(swing) == 0 {
		return append([]models.Category{}, fallbackTargets...)
	}
	return swing
}
