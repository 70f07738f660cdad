package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Host.validate(),
		c.Telemetry.validate(),
		c.Registry.validate(),
	}
	if c.Registry.SyncOnStartup && !c.Host.Enabled {
		errs = append(errs, errors.New("registry.sync_on_startup requires host.enabled"))
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (h *HostConfig) validate() error {
	if !h.Enabled {
		return nil
	}

	var errs []error

	if h.BaseURL == "" {
		errs = append(errs, errors.New("host.base_url must not be empty"))
	}
	if h.Timeout <= 0 {
		errs = append(errs, errors.New("host.timeout must be positive"))
	}
	if h.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("host.retry.max_attempts must be >= 1, got %d", h.Retry.MaxAttempts))
	}
	if h.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("host.retry.multiplier must be positive, got %f", h.Retry.Multiplier))
	}
	if h.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("host.circuit_breaker.max_failures must be >= 1, got %d",
			h.CircuitBreaker.MaxFailures))
	}
	if h.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("host.rate_limit.requests_per_second must not be negative"))
	}
	if h.RateLimit.RequestsPerSecond > 0 && h.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("host.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			h.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

// validate checks the shape of each declaration. Duplicates are left to the
// registry, which rejects them when the declarations are applied.
func (r *RegistryConfig) validate() error {
	var errs []error

	for i, d := range r.TypeToType {
		if blank(d.TypeA) || blank(d.TypeB) || blank(d.Name) {
			errs = append(errs, fmt.Errorf("registry.type_to_type[%d] needs type_a, type_b and name", i))
		}
	}
	for i, d := range r.TypeToActor {
		if blank(d.Type) || blank(d.Role) {
			errs = append(errs, fmt.Errorf("registry.type_to_actor[%d] needs type and role", i))
		}
	}
	if r.SyncWorkers < 1 {
		errs = append(errs, fmt.Errorf("registry.sync_workers must be >= 1, got %d", r.SyncWorkers))
	}

	return errors.Join(errs...)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
