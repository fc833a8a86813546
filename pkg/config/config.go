package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jstittsworth/matchup-optimizer/internal/models"
)

// Config holds the operational settings read from the environment.
type Config struct {
	Env             string        `mapstructure:"ENV"`
	Season          string        `mapstructure:"SEASON"`
	RedisURL        string        `mapstructure:"REDIS_URL"`
	SnapshotDBPath  string        `mapstructure:"SNAPSHOT_DB_PATH"`
	OutputDir       string        `mapstructure:"OUTPUT_DIR"`
	NBAAPITimeout   time.Duration `mapstructure:"NBA_API_TIMEOUT"`
	NBAAPIRateLimit int           `mapstructure:"NBA_API_RATE_LIMIT"`
	BreakerTimeout  time.Duration `mapstructure:"CIRCUIT_BREAKER_TIMEOUT"`
	BreakerMaxReqs  int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SEASON", "2025-26")
	viper.SetDefault("REDIS_URL", "") // empty disables the response cache
	viper.SetDefault("SNAPSHOT_DB_PATH", "snapshots.db")
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("NBA_API_TIMEOUT", "30s")
	viper.SetDefault("NBA_API_RATE_LIMIT", 30) // requests per minute
	viper.SetDefault("CIRCUIT_BREAKER_TIMEOUT", "60s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// RosterConfig is the CLI input: both rosters plus analysis settings.
type RosterConfig struct {
	MyTeam       []string       `mapstructure:"my_team"`
	OpponentTeam []string       `mapstructure:"opponent_team"`
	Settings     RosterSettings `mapstructure:"config"`
}

// RosterSettings controls the analysis date and lookback window.
type RosterSettings struct {
	CurrentDate string          `mapstructure:"current_date"`
	Lookback    models.Lookback `mapstructure:"lookback"`
}

// LoadRosters reads the roster JSON file given on the command line. A
// missing or malformed file is a fatal setup error; missing settings get
// defaults (lookback "season", current date today).
func LoadRosters(path string) (*RosterConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read roster config %s: %w", path, err)
	}

	var rc RosterConfig
	if err := v.Unmarshal(&rc); err != nil {
		return nil, fmt.Errorf("failed to decode roster config: %w", err)
	}

	if rc.Settings.Lookback == "" {
		rc.Settings.Lookback = models.LookbackSeason
	}
	if rc.Settings.CurrentDate == "" {
		rc.Settings.CurrentDate = time.Now().Format("2006-01-02")
	}

	return &rc, nil
}
