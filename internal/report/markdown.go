package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// Context carries the run metadata shown in the report header.
type Context struct {
	RunID       uuid.UUID
	CurrentDate time.Time
	WeekStart   time.Time
	Lookback    models.Lookback
}

// Renderer writes matchup reports as markdown files.
type Renderer struct {
	outputDir string
	now       func() time.Time
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Render writes the full report and returns the path of the written file.
func (r *Renderer) Render(
	ctx Context,
	result models.MatchupResult,
	warnings []models.UnmatchedWarning,
	targets []models.Category,
	streamers []models.StreamerCandidate,
) (string, error) {
	now := r.now()
	filename := fmt.Sprintf("fantasy_report_%s.md", now.Format("2006-01-02_150405"))
	path := filepath.Join(r.outputDir, filename)

	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("# NBA Fantasy Optimization Report")
	line("**Generated:** %s  ", now.Format("2006-01-02 15:04:05"))
	line("**Analysis Date:** %s  ", ctx.CurrentDate.Format("2006-01-02"))
	line("**Week Start:** %s  ", ctx.WeekStart.Format("2006-01-02"))
	line("**Lookback:** %s  ", string(ctx.Lookback))
	line("")

	for _, w := range warnings {
		line("> ⚠️ **Warning:** %s", w.Message())
	}
	if len(warnings) > 0 {
		line("")
	}

	line("## Projected Totals (Rest of Week)")
	line("| Category | My Team | Opponent | Diff | Winner |")
	line("| :--- | :--- | :--- | :--- | :--- |")
	for _, cl := range result.Lines {
		myVal, oppVal, diffVal := formatLine(cl)
		winner := string(cl.Winner)
		if cl.Winner == models.WinnerMe {
			winner = "**" + winner + "**"
		}
		line("| %s | %s | %s | %s | %s |", cl.Category, myVal, oppVal, diffVal, winner)
	}
	line("")

	myWins, oppWins := result.Score()
	line("### Projected Score: **Me %d** - %d Opponent", myWins, oppWins)
	line("")

	line("## Scouting Report: Top Streaming Targets")
	line("**Targeting Swing Categories:** %s", joinCategories(targets))
	line("")
	line("| Rank | Player | Team | Games Left | Projected Swing Stats |")
	line("| :--- | :--- | :--- | :--- | :--- |")
	for i, p := range streamers {
		line("| %d | %s | %s | %d | %s |", i+1, p.Name, p.Team, p.GamesLeft, formatProjected(targets, p.Projected))
	}
	line("")
	line("_Run %s_", ctx.RunID)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func formatLine(cl models.CategoryLine) (myVal, oppVal, diffVal string) {
	if cl.Category.IsRatio() {
		return fmt.Sprintf("%.3f", cl.Mine), fmt.Sprintf("%.3f", cl.Opponent), fmt.Sprintf("%+.3f", cl.Diff)
	}
	return fmt.Sprintf("%.1f", cl.Mine), fmt.Sprintf("%.1f", cl.Opponent), fmt.Sprintf("%+.1f", cl.Diff)
}

func joinCategories(cats []models.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// formatProjected lists projected values in target-category order.
func formatProjected(targets []models.Category, projected map[models.Category]float64) string {
	parts := make([]string, 0, len(targets))
	for _, cat := range targets {
		val, ok := projected[cat]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("**%s**: %.1f", cat, val))
	}
	return strings.Join(parts, ", ")
}
