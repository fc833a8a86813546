package models

// PlayerStatRecord is one row of per-game season (or lookback window)
// averages for a single player. Records are replaced wholesale on every
// fetch and never mutated afterwards.
type PlayerStatRecord struct {
	PlayerID    int     `gorm:"primaryKey" json:"player_id"`
	Name        string  `gorm:"not null" json:"name"`
	NormName    string  `gorm:"index" json:"norm_name"`
	Team        string  `gorm:"index" json:"team"`
	GamesPlayed int     `json:"games_played"`
	Minutes     float64 `json:"minutes"`

	FGM  float64 `json:"fgm"`
	FGA  float64 `json:"fga"`
	FTM  float64 `json:"ftm"`
	FTA  float64 `json:"fta"`
	FG3M float64 `json:"fg3m"`
	PTS  float64 `json:"pts"`
	REB  float64 `json:"reb"`
	AST  float64 `json:"ast"`
	STL  float64 `json:"stl"`
	BLK  float64 `json:"blk"`
	TOV  float64 `json:"tov"`
}

// TableName specifies the table name for GORM
func (PlayerStatRecord) TableName() string {
	return "player_stats"
}

// CountingValue returns the per-game average for a counting category.
func (p *PlayerStatRecord) CountingValue(cat Category) float64 {
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
