// Package resilience guards calls to flaky upstream dependencies.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreakerConfig configures an optional breaker in front of an upstream dependency.
// A disabled breaker passes every call through.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

// NormalizeCircuitBreakerConfig fills non-positive thresholds with defaults. Enabled is
// left as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaultOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return cfg
}

// CircuitBreaker trips after consecutive failures and lets a limited number of probes
// through once the open timeout elapses. Outcomes of calls admitted before the last state
// change are ignored.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu         sync.Mutex
	state      CircuitState
	generation uint64
	failures   int
	openedAt   time.Time
	inFlight   int
	successes  int
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:   NormalizeCircuitBreakerConfig(cfg),
		now:   time.Now,
		state: CircuitStateClosed,
	}
}

func (b *CircuitBreaker) Enabled() bool {
	return b != nil && b.cfg.Enabled
}

// Do runs fn when the breaker admits it and records the outcome. A call that ends with
// ctx already done gives its permit back without counting as a failure.
func (b *CircuitBreaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if !b.Enabled() {
		return fn(ctx)
	}

	generation, err := b.admit()
	if err != nil {
		return err
	}

	err = fn(ctx)
	switch {
	case err == nil:
		b.onSuccess(generation)
	case ctx.Err() != nil:
		b.release(generation)
	default:
		b.onFailure(generation)
	}
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advance()
	return b.state
}

func (b *CircuitBreaker) admit() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advance()
	switch b.state {
	case CircuitStateOpen:
		return 0, ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.inFlight >= b.cfg.HalfOpenMaxReq {
			return 0, ErrCircuitOpen
		}
		b.inFlight++
	}
	return b.generation, nil
}

func (b *CircuitBreaker) onSuccess(generation uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		return
	}
	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.inFlight--
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) onFailure(generation uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		return
	}
	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.transition(CircuitStateOpen)
	}
}

func (b *CircuitBreaker) release(generation uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if generation == b.generation && b.state == CircuitStateHalfOpen && b.inFlight > 0 {
		b.inFlight--
	}
}

// advance moves an open breaker to half-open once the timeout has elapsed. Callers hold mu.
func (b *CircuitBreaker) advance() {
	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		b.transition(CircuitStateHalfOpen)
	}
}

func (b *CircuitBreaker) transition(state CircuitState) {
	b.state = state
	b.generation++
	b.failures = 0
	b.inFlight = 0
	b.successes = 0
	if state == CircuitStateOpen {
		b.openedAt = b.now()
	}
}
