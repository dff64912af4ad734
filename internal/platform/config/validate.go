package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every invalid setting so one run reports all of them.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) positive(key string, d time.Duration) {
	p.check(d > 0, "%s must be positive, got %s", key, d)
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.positive("server.read_timeout", s.ReadTimeout)
	p.positive("server.write_timeout", s.WriteTimeout)
	p.positive("server.request_timeout", s.RequestTimeout)
	p.positive("server.shutdown_timeout", s.ShutdownTimeout)

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	cl := c.Client
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.positive("client.timeout", cl.Timeout)
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.MaxInterval >= cl.Retry.InitialInterval,
		"client.retry.max_interval %s is below initial_interval %s", cl.Retry.MaxInterval, cl.Retry.InitialInterval)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when limiting, got %d", cl.RateLimit.BurstSize)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must be set for the otlp exporter")
	}

	p.check(c.Bulk.MaxWorkers >= 1, "bulk.max_workers must be >= 1, got %d", c.Bulk.MaxWorkers)

	return errors.Join(p...)
}
