package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.JWTIssuer == "" {
		return fmt.Errorf("auth.jwt_issuer is required")
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Redis.Enabled() && c.Redis.BlockTTL <= 0 {
		return fmt.Errorf("redis.block_ttl must be > 0 (got %v)", c.Redis.BlockTTL)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	if c.Vocabulary.ExportMaxWords <= 0 {
		return fmt.Errorf("vocabulary.export_max_words must be > 0 (got %d)", c.Vocabulary.ExportMaxWords)
	}
	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}
	if c.Audit.RetentionDays <= 0 {
		return fmt.Errorf("audit.retention_days must be > 0 (got %d)", c.Audit.RetentionDays)
	}
	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit budgets must be >= 0 (got %d reads, %d writes)",
			c.RateLimit.RequestsPerMinute, c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c ContentConfig) validate() error {
	if c.PreviewChars <= 0 {
		return fmt.Errorf("preview_chars must be > 0 (got %d)", c.PreviewChars)
	}
	if c.MaxSelection <= 0 {
		return fmt.Errorf("max_selection must be > 0 (got %d)", c.MaxSelection)
	}
	if c.MaxBlockBytes <= 0 {
		return fmt.Errorf("max_block_bytes must be > 0 (got %d)", c.MaxBlockBytes)
	}
	return nil
}

func (p *PracticeConfig) validate() error {
	if p.DeckSize <= 0 || p.DeckSize > p.MaxDeckSize {
		return fmt.Errorf("deck_size must be in 1..%d (got %d)", p.MaxDeckSize, p.DeckSize)
	}
	if p.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", p.MinEaseFactor)
	}
	if p.DefaultEaseFactor < p.MinEaseFactor {
		return fmt.Errorf("default_ease_factor (%v) must be >= min_ease_factor (%v)", p.DefaultEaseFactor, p.MinEaseFactor)
	}
	if p.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", p.MaxIntervalDays)
	}
	if p.GraduatingInterval <= 0 || p.EasyInterval <= 0 {
		return fmt.Errorf("graduating_interval and easy_interval must be > 0 (got %d, %d)", p.GraduatingInterval, p.EasyInterval)
	}

	steps, err := ParseLearningSteps(p.LearningStepsRaw)
	if err != nil {
		return fmt.Errorf("learning_steps: %w", err)
	}
	p.LearningSteps = steps

	steps, err = ParseLearningSteps(p.RelearningStepsRaw)
	if err != nil {
		return fmt.Errorf("relearning_steps: %w", err)
	}
	p.RelearningSteps = steps
	return nil
}

// ParseLearningSteps parses a comma-separated list of durations such as
// "1m,10m". Every step must be positive; an empty list is allowed.
func ParseLearningSteps(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	steps := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		d, err := time.ParseDuration(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid step %q: %w", part, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("step %q must be positive", part)
		}
		steps = append(steps, d)
	}
	return steps, nil
}
