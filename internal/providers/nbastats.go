package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
	"github.com/jstittsworth/matchup-optimizer/internal/services"
)

const (
	defaultBaseURL = "https://stats.nba.com"
	apiDateLayout  = "01/02/2006"
	isoDateLayout  = "2006-01-02"

	statsCacheTTL = 1 * time.Hour
)

// Cache is the subset of the cache service the client needs; nil disables
// caching entirely.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// StatsClient fetches per-game player averages and the league schedule
// from the NBA stats API.
type StatsClient struct {
	httpClient *http.Client
	baseURL    string
	season     string
	cache      Cache
	breaker    *services.CircuitBreakerService
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

// NewStatsClient creates a stats API client. requestsPerMinute throttles
// outgoing calls; the stats API silently blocks aggressive clients.
func NewStatsClient(
	season string,
	timeout time.Duration,
	requestsPerMinute int,
	cache Cache,
	breaker *services.CircuitBreakerService,
	logger *logrus.Logger,
) *StatsClient {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	return &StatsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		season:  season,
		cache:   cache,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		logger:  logger,
	}
}

// Stats API tabular response structures
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

func (r *statsResponse) findResultSet(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("result set %q not found in response", name)
}

// columnIndex maps header names to row positions for one result set.
type columnIndex map[string]int

func (rs *resultSet) columns() columnIndex {
	index := make(columnIndex, len(rs.Headers))
	for i, h := range rs.Headers {
		index[h] = i
	}
	return index
}

func (ci columnIndex) str(row []interface{}, col string) string {
	i, ok := ci[col]
	if !ok || i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}

func (ci columnIndex) float(row []interface{}, col string) float64 {
	i, ok := ci[col]
	if !ok || i >= len(row) {
		return 0
	}
	f, _ := row[i].(float64)
	return f
}

func (ci columnIndex) int(row []interface{}, col string) int {
	return int(ci.float(row, col))
}

// FetchPlayerStats returns one per-game average row per player for the
// configured season, restricted to the lookback's date window when one is
// set. Dates go to the API in MM/DD/YYYY form.
func (c *StatsClient) FetchPlayerStats(ctx context.Context, lookback models.Lookback, current time.Time) ([]models.PlayerStatRecord, error) {
	window := "season"
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", c.season)
	params.Set("SeasonType", "Regular Season")
	params.Set("PerMode", "PerGame")
	params.Set("MeasureType", "Base")
	params.Set("DateFrom", "")
	params.Set("DateTo", "")
	params.Set("LastNGames", "0")
	params.Set("Month", "0")
	params.Set("OpponentTeamID", "0")
	params.Set("Period", "0")
	params.Set("TeamID", "0")

	if from, to, ok := lookback.Window(current); ok {
		params.Set("DateFrom", from.Format(apiDateLayout))
		params.Set("DateTo", to.Format(apiDateLayout))
		window = fmt.Sprintf("%s-%s", from.Format(isoDateLayout), to.Format(isoDateLayout))
		c.logger.Infof("Fetching stats from %s to %s", from.Format(apiDateLayout), to.Format(apiDateLayout))
	} else {
		c.logger.Infof("Fetching full %s season stats", c.season)
	}

	cacheKey := services.PlayerStatsCacheKey(c.season, window)
	var cached []models.PlayerStatRecord
	if c.cache != nil && c.cache.Get(ctx, cacheKey, &cached) == nil {
		return cached, nil
	}

	resp, err := c.get(ctx, "playerstats", "/stats/leaguedashplayerstats", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player stats: %w", err)
	}

	rs, err := resp.findResultSet("LeagueDashPlayerStats")
	if err != nil {
		return nil, err
	}

	cols := rs.columns()
	players := make([]models.PlayerStatRecord, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		players = append(players, models.PlayerStatRecord{
			PlayerID:    cols.int(row, "PLAYER_ID"),
			Name:        cols.str(row, "PLAYER_NAME"),
			Team:        cols.str(row, "TEAM_ABBREVIATION"),
			GamesPlayed: cols.int(row, "GP"),
			Minutes:     cols.float(row, "MIN"),
			FGM:         cols.float(row, "FGM"),
			FGA:         cols.float(row, "FGA"),
			FTM:         cols.float(row, "FTM"),
			FTA:         cols.float(row, "FTA"),
			FG3M:        cols.float(row, "FG3M"),
			PTS:         cols.float(row, "PTS"),
			REB:         cols.float(row, "REB"),
			AST:         cols.float(row, "AST"),
			STL:         cols.float(row, "STL"),
			BLK:         cols.float(row, "BLK"),
			TOV:         cols.float(row, "TOV"),
		})
	}

	if c.cache != nil && len(players) > 0 {
		if err := c.cache.Set(ctx, cacheKey, players, statsCacheTTL); err != nil {
			c.logger.Warnf("Failed to cache player stats: %v", err)
		}
	}

	return players, nil
}

// FetchWeeklySchedule returns one entry per team per game for the seven
// day window starting at weekStart.
func (c *StatsClient) FetchWeeklySchedule(ctx context.Context, weekStart time.Time) ([]models.ScheduleEntry, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)

	cacheKey := services.ScheduleCacheKey(c.season, weekStart.Format(isoDateLayout))
	var cached []models.ScheduleEntry
	if c.cache != nil && c.cache.Get(ctx, cacheKey, &cached) == nil {
		return cached, nil
	}

	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", c.season)
	params.Set("SeasonType", "Regular Season")
	params.Set("PlayerOrTeam", "T")

	resp, err := c.get(ctx, "gamefinder", "/stats/leaguegamefinder", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	rs, err := resp.findResultSet("LeagueGameFinderResults")
	if err != nil {
		return nil, err
	}

	cols := rs.columns()
	var entries []models.ScheduleEntry
	for _, row := range rs.RowSet {
		rawDate := cols.str(row, "GAME_DATE")
		gameDate, err := time.Parse(isoDateLayout, rawDate)
		if err != nil {
			c.logger.Warnf("Skipping schedule row with bad date %q: %v", rawDate, err)
			continue
		}
		if gameDate.Before(weekStart) || gameDate.After(weekEnd) {
			continue
		}
		entries = append(entries, models.ScheduleEntry{
			Team: cols.str(row, "TEAM_ABBREVIATION"),
			Date: gameDate,
		})
	}

	if c.cache != nil && len(entries) > 0 {
		if err := c.cache.Set(ctx, cacheKey, entries, statsCacheTTL); err != nil {
			c.logger.Warnf("Failed to cache schedule: %v", err)
		}
	}

	return entries, nil
}

// get performs one rate-limited, breaker-guarded API request.
func (c *StatsClient) get(ctx context.Context, service, path string, params url.Values) (*statsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	fetch := func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		// The stats API rejects requests without browser-ish headers
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")
		req.Header.Set("Referer", "https://www.nba.com/")
		req.Header.Set("Origin", "https://www.nba.com")
		req.Header.Set("x-nba-stats-origin", "stats")
		req.Header.Set("x-nba-stats-token", "true")
		req.Header.Set("Accept", "application/json")

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("stats API returned status %d", httpResp.StatusCode)
		}

		var decoded statsResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &decoded, nil
	}

	var result interface{}
	var err error
	if c.breaker != nil {
		result, err = c.breaker.Execute(service, fetch)
	} else {
		result, err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return result.(*statsResponse), nil
}
