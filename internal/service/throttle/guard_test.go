package throttle

import (
	"testing"
	"time"
)

func TestGuardFirstCallAccepted(t *testing.T) {
	g := NewGuard()
	res := g.Check("k", 15*time.Second)
	if res.Throttled {
		t.Fatalf("first call should be accepted")
	}
}

func TestGuardSecondCallThrottled(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGuard(WithClock(func() time.Time { return now }))

	if res := g.Check("k", 15*time.Second); res.Throttled {
		t.Fatalf("first call should be accepted")
	}

	now = now.Add(5 * time.Second)
	res := g.Check("k", 15*time.Second)
	if !res.Throttled {
		t.Fatalf("call within window should be throttled")
	}
	if res.RetryAfter != 10*time.Second {
		t.Fatalf("unexpected retry after %v", res.RetryAfter)
	}
}

func TestGuardThrottledCallDoesNotExtendWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGuard(WithClock(func() time.Time { return now }))

	g.Check("k", 15*time.Second)

	// A rejected call must not reset the window.
	now = now.Add(14 * time.Second)
	if res := g.Check("k", 15*time.Second); !res.Throttled {
		t.Fatalf("call within window should be throttled")
	}

	now = now.Add(time.Second)
	if res := g.Check("k", 15*time.Second); res.Throttled {
		t.Fatalf("call at window boundary should be accepted")
	}
}

func TestGuardKeysIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGuard(WithClock(func() time.Time { return now }))

	g.Check("a", 15*time.Second)
	if res := g.Check("b", 15*time.Second); res.Throttled {
		t.Fatalf("different key should not be throttled")
	}
}

func TestGuardReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGuard(WithClock(func() time.Time { return now }))

	g.Check("k", 15*time.Second)
	g.Reset()
	if res := g.Check("k", 15*time.Second); res.Throttled {
		t.Fatalf("call after reset should be accepted")
	}
}
