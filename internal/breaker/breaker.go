package breaker

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrOpen is returned by Allow while the breaker is rejecting calls.
var ErrOpen = errors.New("circuit breaker open")

type state int

const (
	closed state = iota
	open
	halfOpen
)

// Breaker tracks consecutive failures against a single dependency. After
// Threshold consecutive failures it opens for Cooldown, short-circuiting all
// calls, then half-opens to let one probe through. Construct one per
// dependency and inject it; it is safe for concurrent use.
type Breaker struct {
	mu        sync.Mutex
	st        state
	failures  int
	openedAt  time.Time
	probing   bool
	threshold int
	cooldown  time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func New(threshold int, cooldown time.Duration, logger *slog.Logger) *Breaker {
	if threshold <= 0 {
		threshold = 5
	}
	if cooldown <= 0 {
		cooldown = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
		logger:    logger,
	}
}

// Allow reports whether a call may proceed. In half-open state only a single
// in-flight probe is admitted; concurrent callers get ErrOpen until the probe
// reports back.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.st {
	case closed:
		return nil
	case open:
		if b.now().Sub(b.openedAt) < b.cooldown {
			return ErrOpen
		}
		b.st = halfOpen
		b.probing = true
		b.logger.Info("breaker half-open, admitting probe")
		return nil
	default: // halfOpen
		if b.probing {
			return ErrOpen
		}
		b.probing = true
		return nil
	}
}

// Success records a successful call, closing the breaker.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st != closed {
		b.logger.Info("breaker closed after successful probe")
	}
	b.st = closed
	b.failures = 0
	b.probing = false
}

// Failure records a failed call. A failed probe re-opens immediately.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.st == halfOpen {
		b.st = open
		b.openedAt = b.now()
		b.probing = false
		b.logger.Warn("breaker re-opened after failed probe")
		return
	}

	b.failures++
	if b.st == closed && b.failures >= b.threshold {
		b.st = open
		b.openedAt = b.now()
		b.logger.Warn("breaker opened", "consecutive_failures", b.failures)
	}
}

// Open reports whether calls are currently being rejected.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st == open && b.now().Sub(b.openedAt) < b.cooldown
}
