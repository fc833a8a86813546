package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

func rowWithProj(proj models.Projection) models.ProjectedPlayerRow {
	return models.ProjectedPlayerRow{Proj: proj}
}

func TestCompareMatchupCountingWinner(t *testing.T) {
	my := []models.ProjectedPlayerRow{rowWithProj(models.Projection{PTS: 110})}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{PTS: 100})}

	result := CompareMatchup(my, opp)

	line, ok := result.Line(models.CategoryPTS)
	require.True(t, ok)
	assert.Equal(t, models.WinnerMe, line.Winner)
	assert.InDelta(t, 10.0, line.Diff, 1e-9)
}

func TestCompareMatchupTurnoversLowerWins(t *testing.T) {
	my := []models.ProjectedPlayerRow{rowWithProj(models.Projection{TOV: 10})}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{TOV: 15})}

	result := CompareMatchup(my, opp)

	line, _ := result.Line(models.CategoryTOV)
	assert.Equal(t, models.WinnerMe, line.Winner)

	// and the reverse loses
	reversed := CompareMatchup(opp, my)
	line, _ = reversed.Line(models.CategoryTOV)
	assert.Equal(t, models.WinnerOpp, line.Winner)
}

func TestCompareMatchupTiesGoToOpponent(t *testing.T) {
	my := []models.ProjectedPlayerRow{rowWithProj(models.Projection{PTS: 100, TOV: 12})}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{PTS: 100, TOV: 12})}

	result := CompareMatchup(my, opp)

	pts, _ := result.Line(models.CategoryPTS)
	assert.Equal(t, models.WinnerOpp, pts.Winner)
	tov, _ := result.Line(models.CategoryTOV)
	assert.Equal(t, models.WinnerOpp, tov.Winner)
}

func TestCompareMatchupAggregateRatioNotMeanOfRatios(t *testing.T) {
	// 10/20 and 0/1 -> aggregate 10/21 (~.476), not mean of .5 and 0 (.25)
	my := []models.ProjectedPlayerRow{
		rowWithProj(models.Projection{FGM: 10, FGA: 20}),
		rowWithProj(models.Projection{FGM: 0, FGA: 1}),
	}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{FGM: 9, FGA: 20})}

	result := CompareMatchup(my, opp)

	line, _ := result.Line(models.CategoryFGP)
	assert.InDelta(t, 10.0/21.0, line.Mine, 1e-9)
	assert.Equal(t, models.WinnerMe, line.Winner)
}

func TestCompareMatchupZeroAttemptsRatioIsZero(t *testing.T) {
	my := []models.ProjectedPlayerRow{rowWithProj(models.Projection{FTM: 0, FTA: 0})}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{FTM: 5, FTA: 6})}

	result := CompareMatchup(my, opp)

	line, _ := result.Line(models.CategoryFTP)
	assert.Zero(t, line.Mine)
	assert.Equal(t, models.WinnerOpp, line.Winner)
}

func TestCompareMatchupEmptyRostersAllZero(t *testing.T) {
	result := CompareMatchup(nil, nil)

	require.Len(t, result.Lines, 9)
	for _, line := range result.Lines {
		assert.Zero(t, line.Mine)
		assert.Zero(t, line.Opponent)
		assert.Equal(t, models.WinnerOpp, line.Winner)
	}
}

func TestCompareMatchupOrderIndependent(t *testing.T) {
	a := rowWithProj(models.Projection{PTS: 30, FGM: 5, FGA: 10})
	b := rowWithProj(models.Projection{PTS: 40, FGM: 8, FGA: 12})
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{PTS: 60, FGM: 10, FGA: 20})}

	first := CompareMatchup([]models.ProjectedPlayerRow{a, b}, opp)
	second := CompareMatchup([]models.ProjectedPlayerRow{b, a}, opp)

	assert.Equal(t, first, second)
}

func TestCompareMatchupCategoryOrder(t *testing.T) {
	result := CompareMatchup(nil, nil)

	got := make([]models.Category, len(result.Lines))
	for i, l := range result.Lines {
		got[i] = l.Category
	}
	assert.Equal(t, models.AllCategories, got)
}

func TestMatchupResultScore(t *testing.T) {
	my := []models.ProjectedPlayerRow{rowWithProj(models.Projection{
		PTS: 100, REB: 50, AST: 30, STL: 8, BLK: 6, TOV: 10, FG3M: 12,
		FGM: 40, FGA: 80, FTM: 20, FTA: 25,
	})}
	opp := []models.ProjectedPlayerRow{rowWithProj(models.Projection{
		PTS: 90, REB: 55, AST: 25, STL: 9, BLK: 4, TOV: 12, FG3M: 10,
		FGM: 35, FGA: 80, FTM: 18, FTA: 25,
	})}

	mine, theirs := CompareMatchup(my, opp).Score()
	assert.Equal(t, 9, mine+theirs)
	// PTS, AST, BLK, FG3M, TOV (lower), FG%, FT% go my way
	assert.Equal(t, 7, mine)
}
