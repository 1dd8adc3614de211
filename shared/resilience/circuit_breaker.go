package resilience

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit open")

// CircuitBreaker stops calling an endpoint after a run of consecutive
// failures and lets a single probe through once resetTimeout has elapsed.
type CircuitBreaker struct {
	mu               sync.Mutex
	endpoint         string
	failureThreshold int
	resetTimeout     time.Duration
	now              func() time.Time

	consecutiveFailures int
	state               CircuitState
	reopenAt            time.Time
}

type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

func NewCircuitBreaker(endpoint string, threshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		endpoint:         endpoint,
		failureThreshold: threshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
		state:            CircuitClosed,
	}
}

func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != CircuitOpen {
		return true
	}

	if cb.now().After(cb.reopenAt) {
		cb.state = CircuitHalfOpen
		return true
	}
	return false
}

func (cb *CircuitBreaker) RecordResult(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		cb.consecutiveFailures = 0
		cb.state = CircuitClosed
		return
	}

	cb.consecutiveFailures++
	if cb.state == CircuitHalfOpen || cb.consecutiveFailures >= cb.failureThreshold {
		cb.state = CircuitOpen
		cb.reopenAt = cb.now().Add(cb.resetTimeout)
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Check returns ErrCircuitOpen wrapped with the endpoint name when calls are
// currently rejected.
func (cb *CircuitBreaker) Check() error {
	if cb.Allow() {
		return nil
	}
	return fmt.Errorf("%s: %w after %d consecutive failures", cb.endpoint, ErrCircuitOpen, cb.failureThreshold)
}
