package models

// CategoryLine is one category's head-to-head outcome: both totals, the
// signed difference and the winner tag. Ratio categories carry the
// aggregate percentage (sum of makes over sum of attempts), never a mean
// of per-player percentages.
type CategoryLine struct {
	Category Category `json:"category"`
	Mine     float64  `json:"mine"`
	Opponent float64  `json:"opponent"`
	Diff     float64  `json:"diff"`
	Winner   Winner   `json:"winner"`
}

// MatchupResult holds all nine category lines in report order.
type MatchupResult struct {
	Lines []CategoryLine `json:"lines"`
}

// Line returns the result for one category.
func (r MatchupResult) Line(cat Category) (CategoryLine, bool) {
	for _, l := range r.Lines {
		if l.Category == cat {
			return l, true
		}
	}
	return CategoryLine{}, false
}

// Score tallies category wins per side.
func (r MatchupResult) Score() (mine, opponent int) {
	for _, l := range r.Lines {
		if l.Winner == WinnerMe {
			mine++
		} else {
			opponent++
		}
	}
	return mine, opponent
}
