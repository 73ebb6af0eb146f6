package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Archive ArchiveConfig `yaml:"archive"`
	Query   QueryConfig   `yaml:"query"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// ArchiveConfig selects and configures the historical archive backend.
type ArchiveConfig struct {
	Backend  string         `yaml:"backend" env:"ARCHIVE_BACKEND" env-default:"bigquery"`
	BigQuery BigQueryConfig `yaml:"bigquery"`
	Local    LocalConfig    `yaml:"local"`

	// Coverage is the inclusive window of calendar dates the archive holds.
	// Queries outside it are rejected before any backend call.
	CoverageStart string `yaml:"coverage_start" env:"ARCHIVE_COVERAGE_START" env-default:"1929-01-01"`
	CoverageEnd   string `yaml:"coverage_end" env:"ARCHIVE_COVERAGE_END" env-default:"2025-12-31"`
}

type BigQueryConfig struct {
	Project         string `yaml:"project" env:"BIGQUERY_PROJECT"`
	CredentialsFile string `yaml:"credentials_file" env:"BIGQUERY_CREDENTIALS_FILE"`
	Table           string `yaml:"table" env:"BIGQUERY_TABLE" env-default:"bigquery-public-data.noaa_gsod.gsod*"`
}

type LocalConfig struct {
	Path string `yaml:"path" env:"ARCHIVE_SQLITE_PATH" env-default:"weather.db"`
}

type QueryConfig struct {
	RetryAttempts uint64        `yaml:"retry_attempts" env:"QUERY_RETRY_ATTEMPTS" env-default:"3"`
	RetryBackoff  time.Duration `yaml:"retry_backoff" env:"QUERY_RETRY_BACKOFF" env-default:"500ms"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"QUERY_CACHE_TTL" env-default:"10m"`
	MaxSeriesDays int           `yaml:"max_series_days" env:"QUERY_MAX_SERIES_DAYS" env-default:"366"`
	ToolTimeout   time.Duration `yaml:"tool_timeout" env:"QUERY_TOOL_TIMEOUT" env-default:"30s"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
