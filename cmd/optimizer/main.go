package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/matchup-optimizer/internal/engine"
	"github.com/jstittsworth/matchup-optimizer/internal/providers"
	"github.com/jstittsworth/matchup-optimizer/internal/report"
	"github.com/jstittsworth/matchup-optimizer/internal/services"
	"github.com/jstittsworth/matchup-optimizer/internal/store"
	"github.com/jstittsworth/matchup-optimizer/pkg/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: optimizer <rosters.json>")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logger := logrus.StandardLogger()

	rosters, err := config.LoadRosters(os.Args[1])
	if err != nil {
		logger.Fatalf("Error loading roster config: %v", err)
	}

	current, err := time.Parse("2006-01-02", rosters.Settings.CurrentDate)
	if err != nil {
		logger.Fatalf("Invalid current_date %q: %v", rosters.Settings.CurrentDate, err)
	}
	weekStart := engine.WeekStart(current)

	runID := uuid.New()
	logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"file":     os.Args[1],
		"date":     rosters.Settings.CurrentDate,
		"lookback": rosters.Settings.Lookback,
	}).Info("Configuration loaded")

	ctx := context.Background()

	// Connect to Redis if configured; the run works without it
	var cache providers.Cache
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warnf("Invalid Redis URL, continuing without cache: %v", err)
		} else {
			redisClient := redis.NewClient(opt)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				logger.Warnf("Redis unavailable, continuing without cache: %v", err)
			} else {
				cache = services.NewCacheService(redisClient)
				defer redisClient.Close()
			}
		}
	}

	// Open the snapshot store used as an offline fallback
	var snapshots services.Snapshotter
	if cfg.SnapshotDBPath != "" {
		st, err := store.Open(cfg.SnapshotDBPath)
		if err != nil {
			logger.Warnf("Snapshot store unavailable: %v", err)
		} else {
			snapshots = st
		}
	}

	breaker := services.NewCircuitBreakerService(cfg.BreakerMaxReqs, cfg.BreakerTimeout, logger)
	statsClient := providers.NewStatsClient(cfg.Season, cfg.NBAAPITimeout, cfg.NBAAPIRateLimit, cache, breaker, logger)
	data := services.NewDataService(statsClient, snapshots, logger)

	// Fetch data
	logger.Info("Fetching data...")
	stats, err := data.PlayerStats(ctx, rosters.Settings.Lookback, current)
	if err != nil {
		logger.Fatalf("Failed to fetch player stats: %v", err)
	}
	schedule, err := data.Schedule(ctx, weekStart)
	if err != nil {
		logger.Fatalf("Failed to fetch schedule: %v", err)
	}
	logger.Infof("Schedule fetched for week of %s", weekStart.Format("2006-01-02"))

	// Run the engine
	gamesLeft := engine.BuildGamesRemaining(schedule, current)
	table := engine.NewStatsTable(stats)

	myRows, myWarnings := engine.ProjectRoster(rosters.MyTeam, table, gamesLeft, rosters.Settings.Lookback)
	oppRows, oppWarnings := engine.ProjectRoster(rosters.OpponentTeam, table, gamesLeft, rosters.Settings.Lookback)

	warnings := append(myWarnings, oppWarnings...)
	for _, w := range warnings {
		logger.Warn(w.Message())
	}

	result := engine.CompareMatchup(myRows, oppRows)
	targets := engine.TargetCategories(engine.SwingCategories(result, engine.DefaultSwingThreshold))

	rostered := make([]string, 0, len(rosters.MyTeam)+len(rosters.OpponentTeam))
	rostered = append(rostered, rosters.MyTeam...)
	rostered = append(rostered, rosters.OpponentTeam...)
	streamers := engine.RankStreamers(table, rostered, gamesLeft, targets, engine.DefaultStreamerLimit)

	// Render the report
	renderer := report.NewRenderer(cfg.OutputDir)
	path, err := renderer.Render(report.Context{
		RunID:       runID,
		CurrentDate: current,
		WeekStart:   weekStart,
		Lookback:    rosters.Settings.Lookback,
	}, result, warnings, targets, streamers)
	if err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}

	logger.Infof("Report saved to %s", path)
}
