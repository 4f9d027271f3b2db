package config

import (
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Revision    RevisionConfig    `yaml:"revision"`
	History     HistoryConfig     `yaml:"history"`
	Opportunity OpportunityConfig `yaml:"opportunity"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	// ApplicationName is reported to postgres (pg_stat_activity).
	ApplicationName string `yaml:"application_name" env:"DATABASE_APPLICATION_NAME" env-default:"placement-backend"`
	// SlowQueryThreshold logs statements slower than this at warn. 0 disables it.
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"250ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RevisionConfig controls the revision trail.
//
// Mode is fixed per deployment: "best_effort" never lets a history write
// failure block a business write, "transactional" rolls both back together.
// ExcludeRaw and RedactRaw are comma-separated "model.field" lists.
type RevisionConfig struct {
	Mode       string `yaml:"mode"           env:"REVISION_MODE"           env-default:"best_effort"`
	ExcludeRaw string `yaml:"exclude_fields" env:"REVISION_EXCLUDE_FIELDS"`
	RedactRaw  string `yaml:"redact_fields"  env:"REVISION_REDACT_FIELDS"`

	// Exclude is parsed from ExcludeRaw during validation, keyed by model.
	Exclude map[string][]string `yaml:"-" env:"-"`
	// Redact is parsed from RedactRaw during validation, keyed by model.
	Redact map[string][]string `yaml:"-" env:"-"`
}

// HistoryConfig holds read-side limits of the history views.
type HistoryConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"HISTORY_DEFAULT_LIMIT" env-default:"50"`
	MaxLimit     int `yaml:"max_limit"     env:"HISTORY_MAX_LIMIT"     env-default:"500"`
	// RateLimit caps history requests per client per minute. 0 disables it.
	RateLimit int `yaml:"rate_limit_per_minute" env:"HISTORY_RATE_LIMIT" env-default:"120"`
}

// OpportunityConfig holds opportunity lifecycle settings.
type OpportunityConfig struct {
	// ArchiveRetentionDays is how long an archived opportunity is kept before
	// the cleanup command purges it.
	ArchiveRetentionDays int `yaml:"archive_retention_days" env:"OPPORTUNITY_ARCHIVE_RETENTION_DAYS" env-default:"90"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
