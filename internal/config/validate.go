package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.SlowQueryThreshold < 0 {
		return fmt.Errorf("database.slow_query_threshold must be >= 0 (got %s)", c.Database.SlowQueryThreshold)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Revision.validate(); err != nil {
		return fmt.Errorf("revision: %w", err)
	}

	if c.History.DefaultLimit <= 0 {
		return fmt.Errorf("history.default_limit must be > 0 (got %d)", c.History.DefaultLimit)
	}
	if c.History.MaxLimit < c.History.DefaultLimit {
		return fmt.Errorf("history.max_limit must be >= default_limit (got %d < %d)", c.History.MaxLimit, c.History.DefaultLimit)
	}
	if c.History.RateLimit < 0 {
		return fmt.Errorf("history.rate_limit_per_minute must be >= 0 (got %d)", c.History.RateLimit)
	}

	if c.Opportunity.ArchiveRetentionDays <= 0 {
		return fmt.Errorf("opportunity.archive_retention_days must be > 0 (got %d)", c.Opportunity.ArchiveRetentionDays)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (r *RevisionConfig) validate() error {
	switch r.Mode {
	case "best_effort", "transactional":
	default:
		return fmt.Errorf("mode must be best_effort or transactional (got %q)", r.Mode)
	}

	exclude, err := ParseFieldList(r.ExcludeRaw)
	if err != nil {
		return fmt.Errorf("exclude_fields: %w", err)
	}
	r.Exclude = exclude

	redact, err := ParseFieldList(r.RedactRaw)
	if err != nil {
		return fmt.Errorf("redact_fields: %w", err)
	}
	r.Redact = redact

	return nil
}

// ParseFieldList parses a comma-separated list of "model.field" items
// (e.g. "company.website,opportunity.salary") into fields grouped by model.
// The field may be a dot path into a nested document ("company.address.city").
// An empty string returns a nil map.
func ParseFieldList(raw string) (map[string][]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	out := make(map[string][]string)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		model, field, ok := strings.Cut(item, ".")
		if !ok || model == "" || slices.Contains(strings.Split(field, "."), "") {
			return nil, fmt.Errorf("invalid item %q, want model.field", item)
		}
		out[model] = append(out[model], field)
	}

	return out, nil
}
