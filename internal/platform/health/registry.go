// Package health tracks the health of the components the readiness probe
// depends on: the relationship catalog itself and, when enabled, the host
// platform client.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Check adapts a plain function to [ports.HealthChecker].
type Check struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

// Name implements [ports.HealthChecker].
func (c Check) Name() string { return c.CheckName }

// HealthCheck implements [ports.HealthChecker].
func (c Check) HealthCheck(ctx context.Context) error { return c.Fn(ctx) }

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Registering a second checker with the same name
// replaces the first.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.checkers {
		if existing.Name() == checker.Name() {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns the results
// keyed by checker name. A nil value means healthy. Checks run without the
// registry lock held.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
