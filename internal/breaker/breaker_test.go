package breaker

import (
	"testing"
	"time"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := New(3, time.Minute, nil)

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("call %d: unexpected rejection: %v", i, err)
		}
		b.Failure()
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("still below threshold, should allow: %v", err)
	}
	b.Failure()

	if err := b.Allow(); err != ErrOpen {
		t.Fatalf("expected ErrOpen after 3 consecutive failures, got %v", err)
	}
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b := New(3, time.Minute, nil)
	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()
	if err := b.Allow(); err != nil {
		t.Fatalf("count should have reset on success: %v", err)
	}
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b := New(1, time.Minute, nil)
	now := time.Unix(1000, 0)
	b.now = func() time.Time { return now }

	b.Failure()
	if err := b.Allow(); err != ErrOpen {
		t.Fatal("expected open")
	}

	// Cooldown elapses: exactly one probe admitted.
	now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to be admitted: %v", err)
	}
	if err := b.Allow(); err != ErrOpen {
		t.Fatal("second concurrent call during probe should be rejected")
	}

	// Failed probe re-opens for a fresh cooldown.
	b.Failure()
	if err := b.Allow(); err != ErrOpen {
		t.Fatal("expected re-open after failed probe")
	}

	// Successful probe closes.
	now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe: %v", err)
	}
	b.Success()
	if err := b.Allow(); err != nil {
		t.Fatalf("breaker should be closed: %v", err)
	}
}
