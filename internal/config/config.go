// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Feed      FeedConfig      `yaml:"feed"`
	Push      PushConfig      `yaml:"push"`
	Retention RetentionConfig `yaml:"retention"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the watch-set cache settings.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Addr returns the host:port address for the Redis client.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// FeedConfig defines snapshot feed polling behavior.
type FeedConfig struct {
	PollInterval       time.Duration `yaml:"poll_interval"`
	ResubscribeBackoff time.Duration `yaml:"resubscribe_backoff"`
	BatchLimit         int           `yaml:"batch_limit"`
}

// PushConfig defines push notification delivery settings.
type PushConfig struct {
	Enabled    bool            `yaml:"enabled"`
	WebhookURL string          `yaml:"webhook_url"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines push delivery rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RetentionConfig defines how long notification items are kept.
type RetentionConfig struct {
	NotificationMaxAge time.Duration `yaml:"notification_max_age"`
	SweepInterval      time.Duration `yaml:"sweep_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	applyFeedDefaults(&cfg.Feed)
	applyPushDefaults(&cfg.Push)
	applyRetentionDefaults(&cfg.Retention)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.Host == "" {
		r.Host = "localhost"
	}
	if r.Port == 0 {
		r.Port = 6379
	}
	if r.TTL == 0 {
		r.TTL = 5 * time.Minute
	}
}

func applyFeedDefaults(f *FeedConfig) {
	if f.PollInterval == 0 {
		f.PollInterval = 30 * time.Second
	}
	if f.ResubscribeBackoff == 0 {
		f.ResubscribeBackoff = 5 * time.Second
	}
	if f.BatchLimit == 0 {
		f.BatchLimit = 500
	}
}

func applyPushDefaults(p *PushConfig) {
	if p.RateLimit.PerSecond == 0 {
		p.RateLimit.PerSecond = 5.0
	}
	if p.RateLimit.Burst == 0 {
		p.RateLimit.Burst = 10
	}
	if p.RateLimit.DailyLimit == 0 {
		p.RateLimit.DailyLimit = 10000
	}
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.NotificationMaxAge == 0 {
		r.NotificationMaxAge = 90 * 24 * time.Hour
	}
	if r.SweepInterval == 0 {
		r.SweepInterval = 6 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Push.Enabled && cfg.Push.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("push.webhook_url is required when push is enabled"))
	}

	if cfg.Feed.PollInterval < time.Second {
		errs = append(errs, fmt.Errorf(
			"feed.poll_interval must be at least 1s (got %s)", cfg.Feed.PollInterval,
		))
	}

	return errors.Join(errs...)
}
