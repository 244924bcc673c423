package resilience

import (
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

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalize fills unset limits from the defaults. Enabled is kept as is.
func (c CircuitBreakerConfig) Normalize() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}

// StateListener observes transitions; it runs with the breaker lock released.
type StateListener func(name string, from, to CircuitState)

type BreakerOption func(*CircuitBreaker)

func WithStateListener(fn StateListener) BreakerOption {
	return func(b *CircuitBreaker) {
		b.listener = fn
	}
}

func withClock(now func() time.Time) BreakerOption {
	return func(b *CircuitBreaker) {
		b.now = now
	}
}

// Counts is a snapshot of the current generation.
type Counts struct {
	Requests            int
	ConsecutiveFailures int
	HalfOpenSuccesses   int
}

// CircuitBreaker guards a remote dependency such as the shared standings
// cache. Every state change starts a new generation; results reported for an
// older generation are dropped.
type CircuitBreaker struct {
	name     string
	cfg      CircuitBreakerConfig
	listener StateListener
	now      func() time.Time

	mu         sync.Mutex
	state      CircuitState
	generation uint64
	counts     Counts
	inFlight   int
	expiry     time.Time
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig, opts ...BreakerOption) *CircuitBreaker {
	b := &CircuitBreaker{
		name:  name,
		cfg:   cfg.Normalize(),
		now:   time.Now,
		state: CircuitStateClosed,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *CircuitBreaker) Name() string {
	return b.name
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	state, _, change := b.current(b.now())
	b.mu.Unlock()

	b.notify(change)
	return state
}

func (b *CircuitBreaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts
}

// Execute runs fn when the breaker admits it and records the outcome.
// Errors matched by ignore count as successes, e.g. a cache miss.
func (b *CircuitBreaker) Execute(fn func() error, ignore ...error) error {
	generation, err := b.before()
	if err != nil {
		return err
	}

	err = fn()
	b.after(generation, err == nil || matchesAny(err, ignore))
	return err
}

type transition struct {
	from, to CircuitState
}

func (b *CircuitBreaker) before() (uint64, error) {
	b.mu.Lock()
	state, generation, change := b.current(b.now())
	switch {
	case state == CircuitStateOpen:
		b.mu.Unlock()
		b.notify(change)
		return generation, ErrCircuitOpen
	case state == CircuitStateHalfOpen && b.inFlight >= b.cfg.HalfOpenMaxReq:
		b.mu.Unlock()
		b.notify(change)
		return generation, ErrCircuitOpen
	}
	b.counts.Requests++
	b.inFlight++
	b.mu.Unlock()

	b.notify(change)
	return generation, nil
}

func (b *CircuitBreaker) after(before uint64, success bool) {
	b.mu.Lock()
	now := b.now()
	state, generation, change := b.current(now)
	if generation != before {
		b.mu.Unlock()
		b.notify(change)
		return
	}
	if b.inFlight > 0 {
		b.inFlight--
	}

	var next *transition
	if success {
		b.counts.ConsecutiveFailures = 0
		if state == CircuitStateHalfOpen {
			b.counts.HalfOpenSuccesses++
			if b.counts.HalfOpenSuccesses >= b.cfg.HalfOpenMaxReq {
				next = b.setState(CircuitStateClosed, now)
			}
		}
	} else {
		b.counts.ConsecutiveFailures++
		if state == CircuitStateHalfOpen || b.counts.ConsecutiveFailures >= b.cfg.FailureThreshold {
			next = b.setState(CircuitStateOpen, now)
		}
	}
	b.mu.Unlock()

	b.notify(change)
	b.notify(next)
}

// current advances an expired open state to half-open. Caller holds mu.
func (b *CircuitBreaker) current(now time.Time) (CircuitState, uint64, *transition) {
	var change *transition
	if b.state == CircuitStateOpen && !now.Before(b.expiry) {
		change = b.setState(CircuitStateHalfOpen, now)
	}
	return b.state, b.generation, change
}

func (b *CircuitBreaker) setState(to CircuitState, now time.Time) *transition {
	if b.state == to {
		return nil
	}
	from := b.state
	b.state = to
	b.generation++
	b.counts = Counts{}
	b.inFlight = 0
	b.expiry = time.Time{}
	if to == CircuitStateOpen {
		b.expiry = now.Add(b.cfg.OpenTimeout)
	}
	return &transition{from: from, to: to}
}

func (b *CircuitBreaker) notify(t *transition) {
	if t == nil || b.listener == nil {
		return
	}
	b.listener(b.name, t.from, t.to)
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
