package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock lets tests step time forward deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	l := New()
	l.now = clock.now
	return l, clock
}

func TestTakeRejectsAtLimit(t *testing.T) {
	l, _ := newTestLimiter()

	for i := 0; i < 3; i++ {
		if !l.Take(3, 10*time.Second, "copy", "user1") {
			t.Fatalf("take %d: expected accept", i)
		}
	}
	if l.Take(3, 10*time.Second, "copy", "user1") {
		t.Fatal("expected reject at limit")
	}
}

func TestTakeWindowSlides(t *testing.T) {
	l, clock := newTestLimiter()

	if !l.Take(1, 15*time.Second, "copy", "user1") {
		t.Fatal("first take should be accepted")
	}
	clock.advance(5 * time.Second)
	if l.Take(1, 15*time.Second, "copy", "user1") {
		t.Fatal("take inside window should be rejected")
	}
	clock.advance(11 * time.Second)
	if !l.Take(1, 15*time.Second, "copy", "user1") {
		t.Fatal("take after window expired should be accepted")
	}
}

func TestTakeRejectedTakesAreNotRecorded(t *testing.T) {
	l, clock := newTestLimiter()

	if !l.Take(1, 10*time.Second, "copy", "user1") {
		t.Fatal("first take should be accepted")
	}
	// Hammer the limiter; none of these may extend the window.
	for i := 0; i < 5; i++ {
		clock.advance(2 * time.Second)
		l.Take(1, 10*time.Second, "copy", "user1")
	}
	clock.advance(1 * time.Second)
	// 11s after the only accepted take.
	if !l.Take(1, 10*time.Second, "copy", "user1") {
		t.Fatal("rejected takes must not be recorded")
	}
}

func TestTakeKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter()

	if !l.Take(1, 10*time.Second, "copy", "user1") {
		t.Fatal("user1 should be accepted")
	}
	if !l.Take(1, 10*time.Second, "copy", "user2") {
		t.Fatal("user2 must not share user1's bucket")
	}
	if !l.Take(1, 10*time.Second, "upload", "user1") {
		t.Fatal("different bucket name must not share state")
	}
}

// Property from the window contract: for any call sequence, the number of
// accepted takes within any trailing window never exceeds the allowance.
func TestTrailingWindowBound(t *testing.T) {
	const allowed = 4
	window := 20 * time.Second

	l, clock := newTestLimiter()
	var accepted []time.Time

	for i := 0; i < 200; i++ {
		clock.advance(time.Duration(i%7) * time.Second)
		if l.Take(allowed, window, "b", "id") {
			accepted = append(accepted, clock.t)
		}

		count := 0
		cutoff := clock.t.Add(-window)
		for _, ts := range accepted {
			if ts.After(cutoff) {
				count++
			}
		}
		if count > allowed {
			t.Fatalf("step %d: %d accepted takes in trailing window, allowed %d", i, count, allowed)
		}
	}
}

func TestBucketView(t *testing.T) {
	l, _ := newTestLimiter()
	b := l.Bucket(1, 15*time.Second, "copy")

	if !b.Take("guild1", "user1") {
		t.Fatal("bucket take should be accepted")
	}
	if b.Take("guild1", "user1") {
		t.Fatal("bucket take should be rejected")
	}
	// Bucket and direct Take share state for the same key.
	if l.Take(1, 15*time.Second, "copy", "guild1", "user1") {
		t.Fatal("direct take must see bucket state")
	}
}

func TestConcurrentTakes(t *testing.T) {
	l := New()
	const allowed = 10

	done := make(chan bool)
	for i := 0; i < 50; i++ {
		go func() {
			done <- l.Take(allowed, time.Minute, "burst", "user")
		}()
	}

	accepts := 0
	for i := 0; i < 50; i++ {
		if <-done {
			accepts++
		}
	}
	if accepts != allowed {
		t.Fatalf("expected exactly %d accepts, got %d", allowed, accepts)
	}
}

func BenchmarkTake(b *testing.B) {
	l := New()
	for i := 0; i < b.N; i++ {
		l.Take(100, time.Second, "bench", fmt.Sprint(i%32))
	}
}
