package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

func testResult() models.MatchupResult {
	var result models.MatchupResult
	for _, cat := range models.AllCategories {
		winner := models.WinnerOpp
		if cat == models.CategoryPTS {
			winner = models.WinnerMe
		}
		result.Lines = append(result.Lines, models.CategoryLine{
			Category: cat,
			Mine:     100,
			Opponent: 90,
			Diff:     10,
			Winner:   winner,
		})
	}
	return result
}

func TestRenderWritesReport(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)
	r.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 30, 0, 0, time.UTC)
	}

	warnings := []models.UnmatchedWarning{
		{Name: "Ghost Player", Normalized: "ghost player", Lookback: models.LookbackSeason},
	}
	streamers := []models.StreamerCandidate{
		{Name: "Free Agent", Team: "CHI", GamesLeft: 2, Score: 42.5,
			Projected: map[models.Category]float64{models.CategoryPTS: 28.0}},
	}

	path, err := r.Render(Context{
		RunID:       uuid.New(),
		CurrentDate: time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC),
		WeekStart:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Lookback:    models.LookbackSeason,
	}, testResult(), warnings, []models.Category{models.CategoryPTS}, streamers)
	require.NoError(t, err)
	assert.Contains(t, path, "fantasy_report_2026-01-07_123000.md")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "**Analysis Date:** 2026-01-07")
	assert.Contains(t, content, "**Week Start:** 2026-01-05")
	assert.Contains(t, content, "Ghost Player")

	// all nine category rows present
	for _, cat := range models.AllCategories {
		assert.Contains(t, content, "| "+string(cat)+" |")
	}

	// one ME win out of nine
	assert.Contains(t, content, "### Projected Score: **Me 1** - 8 Opponent")
	assert.Contains(t, content, "| 1 | Free Agent | CHI | 2 |")
	assert.Contains(t, content, "**PTS**: 28.0")
}

func TestRenderRatioFormatting(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)

	var result models.MatchupResult
	result.Lines = append(result.Lines, models.CategoryLine{
		Category: models.CategoryFGP,
		Mine:     0.4761904,
		Opponent: 0.45,
		Diff:     0.0261904,
		Winner:   models.WinnerMe,
	})

	path, err := r.Render(Context{
		RunID:       uuid.New(),
		CurrentDate: time.Now(),
		WeekStart:   time.Now(),
		Lookback:    models.Lookback("7"),
	}, result, nil, nil, nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// percentages render to three decimals with a signed diff
	assert.True(t, strings.Contains(string(raw), "| FG% | 0.476 | 0.450 | +0.026 | **ME** |"))
}
