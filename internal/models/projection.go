package models

// Projection holds a single player's rest-of-week totals: the seven
// counting categories plus the four shooting-volume fields that feed the
// aggregate percentage categories.
type Projection struct {
	FG3M float64 `json:"fg3m"`
	PTS  float64 `json:"pts"`
	REB  float64 `json:"reb"`
	AST  float64 `json:"ast"`
	STL  float64 `json:"stl"`
	BLK  float64 `json:"blk"`
	TOV  float64 `json:"tov"`

	FGM float64 `json:"fgm"`
	FGA float64 `json:"fga"`
	FTM float64 `json:"ftm"`
	FTA float64 `json:"fta"`
}

// Counting returns the projected total for a counting category.
func (p Projection) Counting(cat Category) float64 {
	switch cat {
	case CategoryFG3M:
		return p.FG3M
	case CategoryPTS:
		return p.PTS
	case CategoryREB:
		return p.REB
	case CategoryAST:
		return p.AST
	case CategorySTL:
		return p.STL
	case CategoryBLK:
		return p.BLK
	case CategoryTOV:
		return p.TOV
	default:
		return 0
	}
}

// ProjectedPlayerRow couples a matched stat record with the games it has
// left this week and the projected totals derived from both. Immutable
// once created.
type ProjectedPlayerRow struct {
	Player    PlayerStatRecord `json:"player"`
	GamesLeft int              `json:"games_left"`
	Proj      Projection       `json:"proj"`
}

// UnmatchedWarning records a roster name that matched no stat row. It is
// informational only and never aborts a run.
type UnmatchedWarning struct {
	Name       string   `json:"name"`
	Normalized string   `json:"normalized"`
	Lookback   Lookback `json:"lookback"`
}

// Message renders the warning for logs and the report.
func (w UnmatchedWarning) Message() string {
	return "Stats not found for '" + w.Name + "' " + w.Lookback.Describe() +
		". (Normalized: '" + w.Normalized + "'). Check if active."
}
