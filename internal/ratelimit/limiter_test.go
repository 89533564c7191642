package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCheckEnforcesWindowLimit(t *testing.T) {
	l := New(Config{TokensPerInterval: 5, Interval: time.Hour})
	key := "203.0.113.7"

	for i := 1; i <= 5; i++ {
		res := l.Check(key)
		if !res.Allowed {
			t.Fatalf("request %d denied, want allowed", i)
		}
		if want := 5 - i; res.Remaining != want {
			t.Errorf("request %d remaining = %d, want %d", i, res.Remaining, want)
		}
		if res.RetryAfter != 0 {
			t.Errorf("request %d retryAfter = %d, want 0", i, res.RetryAfter)
		}
	}

	res := l.Check(key)
	if res.Allowed {
		t.Fatal("6th request allowed, want denied")
	}
	if res.Remaining != 0 {
		t.Errorf("denied remaining = %d, want 0", res.Remaining)
	}
	if res.RetryAfter <= 0 {
		t.Errorf("denied retryAfter = %d, want > 0", res.RetryAfter)
	}
	if now := time.Now().UnixMilli(); res.Reset <= now {
		t.Errorf("reset %d is not in the future (now %d)", res.Reset, now)
	}
}

func TestCheckWindowExpiryRestartsCount(t *testing.T) {
	l := New(Config{TokensPerInterval: 2, Interval: 50 * time.Millisecond})
	key := "198.51.100.4"

	l.Check(key)
	l.Check(key)
	if res := l.Check(key); res.Allowed {
		t.Fatal("3rd request in window allowed, want denied")
	}

	time.Sleep(80 * time.Millisecond)

	res := l.Check(key)
	if !res.Allowed {
		t.Fatal("request after window expiry denied, want allowed")
	}
	if res.Remaining != 1 {
		t.Errorf("remaining after restart = %d, want 1 (count restarted at 1)", res.Remaining)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(Config{TokensPerInterval: 1, Interval: time.Hour})

	if res := l.Check("a"); !res.Allowed {
		t.Fatal("first request for key a denied")
	}
	if res := l.Check("a"); res.Allowed {
		t.Fatal("second request for key a allowed, want denied")
	}
	if res := l.Check("b"); !res.Allowed {
		t.Fatal("first request for key b denied; keys must not share budget")
	}
}

func TestStatusDoesNotIncrement(t *testing.T) {
	l := New(Config{TokensPerInterval: 3, Interval: time.Hour})
	key := "192.0.2.1"

	for i := 0; i < 10; i++ {
		if res := l.Status(key); !res.Allowed || res.Remaining != 3 {
			t.Fatalf("status call %d mutated state: %+v", i, res)
		}
	}

	l.Check(key)
	if res := l.Status(key); res.Remaining != 2 {
		t.Errorf("status after one check: remaining = %d, want 2", res.Remaining)
	}
}

func TestReset(t *testing.T) {
	l := New(Config{TokensPerInterval: 1, Interval: time.Hour})
	key := "192.0.2.2"

	l.Check(key)
	if res := l.Check(key); res.Allowed {
		t.Fatal("over-limit request allowed before reset")
	}

	l.Reset(key)

	if res := l.Check(key); !res.Allowed {
		t.Fatal("request after Reset denied, want allowed")
	}
}

// Two concurrent requests must never both observe the last free slot.
func TestCheckIsAtomicUnderConcurrency(t *testing.T) {
	const limit = 5
	const attempts = 50

	l := New(Config{TokensPerInterval: limit, Interval: time.Hour})

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Check("shared").Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != limit {
		t.Errorf("allowed %d of %d concurrent requests, want exactly %d", got, attempts, limit)
	}
}

// Bounded LRU storage may forget a key under churn, resetting its budget
// early. Soft guarantee, asserted here so a change in semantics is noticed.
func TestLRUBoundEvictsOldKeys(t *testing.T) {
	l := New(Config{TokensPerInterval: 1, Interval: time.Hour, MaxKeys: 2})

	l.Check("old")
	l.Check("fill-1")
	l.Check("fill-2") // evicts "old"

	if res := l.Check("old"); !res.Allowed {
		t.Error("evicted key should start a fresh window")
	}
}
