package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

func resultWithDiffs(diffs map[models.Category]float64) models.MatchupResult {
	var result models.MatchupResult
	for _, cat := range models.AllCategories {
		result.Lines = append(result.Lines, models.CategoryLine{
			Category: cat,
			Diff:     diffs[cat],
			Winner:   models.WinnerOpp,
		})
	}
	return result
}

func TestSwingCategoriesStrictThreshold(t *testing.T) {
	result := resultWithDiffs(map[models.Category]float64{
		models.CategoryPTS: 15.0,  // excluded, not strictly below
		models.CategoryREB: 14.9,  // included
		models.CategoryAST: -14.9, // included, absolute value
		models.CategoryBLK: 40.0,
	})

	swing := SwingCategories(result, 15)

	assert.Equal(t, []models.Category{models.CategoryFG3M, models.CategoryREB, models.CategoryAST, models.CategorySTL, models.CategoryTOV}, swing)
	assert.NotContains(t, swing, models.CategoryPTS)
	assert.NotContains(t, swing, models.CategoryBLK)
}

func TestSwingCategoriesIgnoresRatios(t *testing.T) {
	// ratio diffs are tiny by construction; they must never qualify
	result := resultWithDiffs(map[models.Category]float64{
		models.CategoryFGP: 0.001,
		models.CategoryFTP: 0.002,
		models.CategoryPTS: 100,
		models.CategoryREB: 100,
		models.CategoryAST: 100,
		models.CategorySTL: 100,
		models.CategoryBLK: 100,
		models.CategoryTOV: 100,
		// FG3M diff 0 -> swings
	})

	swing := SwingCategories(result, 15)
	assert.Equal(t, []models.Category{models.CategoryFG3M}, swing)
}

func TestTargetCategoriesFallback(t *testing.T) {
	targets := TargetCategories(nil)

	assert.Equal(t, []models.Category{
		models.CategoryPTS,
		models.CategoryREB,
		models.CategoryAST,
		models.CategorySTL,
		models.CategoryBLK,
	}, targets)
}

func TestTargetCategoriesPassThrough(t *testing.T) {
	swing := []models.Category{models.CategoryTOV}
	assert.Equal(t, swing, TargetCategories(swing))
}
