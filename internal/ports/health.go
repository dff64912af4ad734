package ports

import "context"

// HealthChecker reports whether one dependency can serve traffic. The
// platform client answers from its circuit breaker state.
type HealthChecker interface {
	Name() string
	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness probe out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
