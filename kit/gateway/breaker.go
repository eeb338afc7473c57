package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"
)

type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	OpenTimeout      time.Duration
	IsFailure        func(resp *http.Response, err error) bool
}

// Breaker decorates a Doer with a circuit breaker. Provider 4xx responses
// do not count as failures; transport errors and 5xx responses do.
type Breaker struct {
	next Doer
	cfg  BreakerConfig

	mu           sync.Mutex
	state        int
	failures     int
	successes    int
	openedAt     time.Time
	halfInFlight bool
}

const (
	stateClosed = iota
	stateOpen
	stateHalfOpen
)

func NewBreaker(next Doer, cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 2 * time.Second
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(resp *http.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, context.Canceled)
			}
			return resp.StatusCode >= http.StatusInternalServerError
		}
	}
	return &Breaker{next: next, cfg: cfg, state: stateClosed}
}

func (b *Breaker) Do(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error) {
	if err := b.beforeCall(); err != nil {
		return nil, err
	}

	resp, err := b.next.Do(ctx, method, url, headers, body)
	b.afterCall(resp, err)
	return resp, err
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return nil
	case stateOpen:
		if time.Since(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.state = stateHalfOpen
		b.successes = 0
		b.halfInFlight = false
		fallthrough
	case stateHalfOpen:
		if b.halfInFlight {
			return ErrCircuitOpen
		}
		b.halfInFlight = true
		return nil
	default:
		return ErrCircuitOpen
	}
}

func (b *Breaker) afterCall(resp *http.Response, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateHalfOpen {
		b.halfInFlight = false
	}

	if !b.cfg.IsFailure(resp, err) {
		switch b.state {
		case stateClosed:
			b.failures = 0
		case stateHalfOpen:
			b.successes++
			if b.successes >= b.cfg.SuccessThreshold {
				b.state = stateClosed
				b.failures = 0
				b.successes = 0
			}
		}
		return
	}

	switch b.state {
	case stateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case stateHalfOpen:
		b.trip()
	}
}

func (b *Breaker) trip() {
	b.state = stateOpen
	b.openedAt = time.Now().UTC()
	b.successes = 0
	b.halfInFlight = false
}
