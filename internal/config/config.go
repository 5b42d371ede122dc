package config

import (
	"net/url"
	"regexp"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Redis      RedisConfig      `yaml:"redis"`
	Content    ContentConfig    `yaml:"content"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Practice   PracticeConfig   `yaml:"practice"`
	Audit      AuditConfig      `yaml:"audit"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
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
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"15s"`
}

var keywordPassword = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)

// RedactedDSN returns the DSN with its password masked, for logs and errors.
func (c DatabaseConfig) RedactedDSN() string {
	if u, err := url.Parse(c.DSN); err == nil && u.Scheme != "" {
		return u.Redacted()
	}
	return keywordPassword.ReplaceAllString(c.DSN, "${1}xxxxx")
}

// AuthConfig holds the settings of the token verifier. Tokens are issued by
// the external identity provider with the same secret and issuer.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"sprachenwald"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"1h"`
}

// RedisConfig holds the block cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	BlockTTL time.Duration `yaml:"block_ttl" env:"REDIS_BLOCK_TTL" env-default:"10m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// ContentConfig holds lesson content limits.
type ContentConfig struct {
	PreviewChars    int `yaml:"preview_chars"     env:"CONTENT_PREVIEW_CHARS"     env-default:"450"`
	MaxSelection    int `yaml:"max_selection"     env:"CONTENT_MAX_SELECTION"     env-default:"100"`
	MaxBlockBytes   int `yaml:"max_block_bytes"   env:"CONTENT_MAX_BLOCK_BYTES"   env-default:"1048576"`
	MaxLessonTitle  int `yaml:"max_lesson_title"  env:"CONTENT_MAX_LESSON_TITLE"  env-default:"200"`
}

// VocabularyConfig holds personal vocabulary settings.
type VocabularyConfig struct {
	ExportMaxWords int `yaml:"export_max_words" env:"VOCABULARY_EXPORT_MAX_WORDS" env-default:"10000"`
}

// PracticeConfig holds the flashcard deck and its review scheduling.
type PracticeConfig struct {
	DeckSize             int     `yaml:"deck_size"              env:"PRACTICE_DECK_SIZE"             env-default:"20"`
	MaxDeckSize          int     `yaml:"max_deck_size"          env:"PRACTICE_MAX_DECK_SIZE"         env-default:"200"`
	DefaultEaseFactor    float64 `yaml:"default_ease_factor"    env:"PRACTICE_DEFAULT_EASE"          env-default:"2.5"`
	MinEaseFactor        float64 `yaml:"min_ease_factor"        env:"PRACTICE_MIN_EASE"              env-default:"1.3"`
	MaxIntervalDays      int     `yaml:"max_interval_days"      env:"PRACTICE_MAX_INTERVAL"          env-default:"365"`
	GraduatingInterval   int     `yaml:"graduating_interval"    env:"PRACTICE_GRADUATING_INTERVAL"   env-default:"1"`
	EasyInterval         int     `yaml:"easy_interval"          env:"PRACTICE_EASY_INTERVAL"         env-default:"4"`
	LearningStepsRaw     string  `yaml:"learning_steps"         env:"PRACTICE_LEARNING_STEPS"        env-default:"1m,10m"`
	RelearningStepsRaw   string  `yaml:"relearning_steps"       env:"PRACTICE_RELEARNING_STEPS"      env-default:"10m"`
	IntervalModifier     float64 `yaml:"interval_modifier"      env:"PRACTICE_INTERVAL_MODIFIER"     env-default:"1.0"`
	HardIntervalModifier float64 `yaml:"hard_interval_modifier" env:"PRACTICE_HARD_INTERVAL_MODIFIER" env-default:"1.2"`
	EasyBonus            float64 `yaml:"easy_bonus"             env:"PRACTICE_EASY_BONUS"            env-default:"1.3"`
	LapseNewInterval     float64 `yaml:"lapse_new_interval"     env:"PRACTICE_LAPSE_NEW_INTERVAL"    env-default:"0.0"`

	// LearningSteps is parsed from LearningStepsRaw during validation.
	LearningSteps []time.Duration `yaml:"-" env:"-"`
	// RelearningSteps is parsed from RelearningStepsRaw during validation.
	RelearningSteps []time.Duration `yaml:"-" env:"-"`
}

// AuditConfig holds audit log settings.
type AuditConfig struct {
	RetentionDays int `yaml:"retention_days" env:"AUDIT_RETENTION_DAYS" env-default:"180"`
}

// RateLimitConfig holds per-IP request budgets. Reads and writes are
// limited separately; zero disables the respective budget.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"        env-default:"300"`
	WritesPerMinute   int           `yaml:"writes_per_minute"   env:"RATE_LIMIT_WRITES_RPM" env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP"    env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
