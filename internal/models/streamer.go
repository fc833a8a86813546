package models

// StreamerCandidate is an unrostered player ranked by projected
// contribution to the matchup's target categories.
type StreamerCandidate struct {
	PlayerID  int                  `json:"player_id"`
	Name      string               `json:"name"`
	Team      string               `json:"team"`
	GamesLeft int                  `json:"games_left"`
	Score     float64              `json:"score"`
	Projected map[Category]float64 `json:"projected"`
}
