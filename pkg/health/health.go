// Package health provides liveness and readiness probe endpoints.
//
// Checks run on demand when a probe endpoint is hit, each bounded by its own
// timeout. Readiness additionally requires the service to have been marked
// ready (SetReady), so deployments can flip readiness off before shutdown.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc reports the health of one component: nil means healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc
}

// Service aggregates liveness and readiness checks.
type Service struct {
	mu        sync.Mutex
	liveness  []check
	readiness []check
	ready     atomic.Bool
}

// New creates an empty health Service. It starts not ready.
func New() *Service {
	return &Service{}
}

// AddLivenessCheck registers a liveness check with a per-run timeout.
func (s *Service) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveness = append(s.liveness, check{name: name, timeout: timeout, fn: fn})
}

// AddReadinessCheck registers a readiness check with a per-run timeout.
func (s *Service) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readiness = append(s.readiness, check{name: name, timeout: timeout, fn: fn})
}

// SetReady flips the readiness gate. ReadyEndpoint fails while unset,
// regardless of check results.
func (s *Service) SetReady(ready bool) {
	s.ready.Store(ready)
}

// LiveEndpoint serves the liveness probe.
func (s *Service) LiveEndpoint(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	checks := append([]check(nil), s.liveness...)
	s.mu.Unlock()
	s.respond(w, r, checks, true)
}

// ReadyEndpoint serves the readiness probe.
func (s *Service) ReadyEndpoint(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	checks := append([]check(nil), s.readiness...)
	s.mu.Unlock()
	s.respond(w, r, checks, s.ready.Load())
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, checks []check, gate bool) {
	results := make(map[string]string, len(checks))
	healthy := gate
	if !gate {
		results["ready"] = "service not ready"
	}

	for _, c := range checks {
		ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
		err := c.fn(ctx)
		cancel()
		if err != nil {
			healthy = false
			results[c.name] = err.Error()
			continue
		}
		results[c.name] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(results)
}

// GoroutineCountCheck returns a check failing when the goroutine count
// exceeds threshold, a cheap proxy for leaks.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > threshold {
			return fmt.Errorf("too many goroutines: %d > %d", n, threshold)
		}
		return nil
	}
}
