package config

import (
	"fmt"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/services/analytics"
	"github.com/spf13/viper"
)

// Catalog source kinds.
const (
	SourceFixture = "fixture"
	SourceDuckDB  = "duckdb"
)

type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Catalog struct {
	// Source selects where the catalog snapshot is loaded from: a JSON
	// fixture file or a DuckDB database.
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

type Analytics struct {
	RecentSessionCount   int     `mapstructure:"recent_session_count"`
	TrialWindowDays      int     `mapstructure:"trial_window_days"`
	AtRiskThreshold      float64 `mapstructure:"at_risk_threshold"`
	SnapshotSessionCount int     `mapstructure:"snapshot_session_count"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Catalog   Catalog   `mapstructure:"catalog"`
	Analytics Analytics `mapstructure:"analytics"`
}

// Load reads the application config file, falling back to defaults for any
// unset value. An empty path yields the pure defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Catalog.Source != SourceFixture && cfg.Catalog.Source != SourceDuckDB {
		return nil, fmt.Errorf("unsupported catalog source %q", cfg.Catalog.Source)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := analytics.DefaultSettings()

	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("catalog.source", SourceFixture)
	v.SetDefault("catalog.path", "catalog.json")
	v.SetDefault("analytics.recent_session_count", defaults.RecentSessionCount)
	v.SetDefault("analytics.trial_window_days", defaults.TrialWindowDays)
	v.SetDefault("analytics.at_risk_threshold", defaults.AtRiskThreshold)
	v.SetDefault("analytics.snapshot_session_count", defaults.SnapshotSessionCount)
}

// Settings maps the configured analytics policy values onto engine settings.
func (c *Config) Settings() analytics.Settings {
	return analytics.Settings{
		RecentSessionCount:   c.Analytics.RecentSessionCount,
		TrialWindowDays:      c.Analytics.TrialWindowDays,
		AtRiskThreshold:      c.Analytics.AtRiskThreshold,
		SnapshotSessionCount: c.Analytics.SnapshotSessionCount,
	}
}
