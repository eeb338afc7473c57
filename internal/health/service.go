package health

import (
	"context"
	"errors"
	"sync"
	"time"

	"mvola/internal/config"
)

// Check is a named readiness probe. Checks run in declaration order.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// ConfigChecks covers what this adapter needs before it can usefully call
// the provider: credentials and a base URL. Missing credentials are not a
// startup failure, they just report here and fail on the first provider
// call.
func ConfigChecks(cfg config.Config) []Check {
	return []Check{
		{
			Name: "credentials",
			Probe: func(ctx context.Context) error {
				if !cfg.HasCredentials() {
					return errors.New("consumer key or secret missing")
				}
				return nil
			},
		},
		{
			Name: "base_url",
			Probe: func(ctx context.Context) error {
				if cfg.BaseURL == "" {
					return errors.New("base url not configured")
				}
				return nil
			},
		},
	}
}

type Result struct {
	At     time.Time
	OK     bool
	Checks map[string]string
}

// Service caches the combined check result for a TTL so the probe
// endpoint stays cheap under polling.
type Service struct {
	mu sync.Mutex

	ttl    time.Duration
	checks []Check

	nextRunAt time.Time
	last      Result
}

func NewService(ttl time.Duration, checks ...Check) *Service {
	return &Service{ttl: ttl, checks: checks, last: Result{Checks: map[string]string{}}}
}

func (s *Service) Check(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.nextRunAt) {
		return s.last
	}

	res := Result{At: time.Now().UTC(), OK: true, Checks: make(map[string]string, len(s.checks))}
	for _, c := range s.checks {
		if c.Probe == nil {
			res.OK = false
			res.Checks[c.Name] = "invalid check"
			continue
		}
		if err := c.Probe(ctx); err != nil {
			res.OK = false
			res.Checks[c.Name] = err.Error()
			continue
		}
		res.Checks[c.Name] = "ok"
	}

	s.last = res
	s.nextRunAt = time.Now().Add(s.ttl)
	return res
}
