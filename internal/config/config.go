package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultStoreTimeout                   = 5 * time.Second
	defaultAggregateTimeout               = 3 * time.Second
	defaultCompleteWorkoutRateLimitPerMin = 10
	defaultRankCacheTTL                   = 5 * time.Minute
	defaultRewardLockTTL                  = 10 * time.Second
	defaultRewardLockWait                 = 2 * time.Second
)

// Duration lets toml values like "5s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	Host string
	Port int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// browser origins allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`

	// progression
	Timezone                       string   `toml:"timezone"`
	StoreTimeout                   Duration `toml:"store_timeout"`
	AggregateTimeout               Duration `toml:"aggregate_timeout"`
	CompleteWorkoutRateLimitPerMin int      `toml:"complete_workout_rate_limit_per_min"`
	RankCacheTTL                   Duration `toml:"rank_cache_ttl"`
	RewardLockTTL                  Duration `toml:"reward_lock_ttl"`
	RewardLockWait                 Duration `toml:"reward_lock_wait"`

	location *time.Location
}

// Location is the timezone all calendar-day computations run in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) setDefaults() error {
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	c.location = loc

	if c.StoreTimeout.Duration <= 0 {
		c.StoreTimeout.Duration = defaultStoreTimeout
	}
	if c.AggregateTimeout.Duration <= 0 {
		c.AggregateTimeout.Duration = defaultAggregateTimeout
	}
	if c.CompleteWorkoutRateLimitPerMin <= 0 {
		c.CompleteWorkoutRateLimitPerMin = defaultCompleteWorkoutRateLimitPerMin
	}
	if c.RankCacheTTL.Duration <= 0 {
		c.RankCacheTTL.Duration = defaultRankCacheTTL
	}
	if c.RewardLockTTL.Duration <= 0 {
		c.RewardLockTTL.Duration = defaultRewardLockTTL
	}
	if c.RewardLockWait.Duration <= 0 {
		c.RewardLockWait.Duration = defaultRewardLockWait
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the toml file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

// Parse is Load for an in-memory toml document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.Get(env)
}
