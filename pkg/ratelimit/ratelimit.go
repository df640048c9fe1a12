// Package ratelimit implements an in-memory sliding-window rate limiter.
// A bucket is identified by a name plus caller-supplied identifier parts
// (typically user and guild IDs); each bucket tracks the timestamps of
// accepted takes inside the current window.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Limiter tracks accepted timestamps per composite key. Safe for use from
// concurrent handler goroutines; the check-then-record step is atomic.
type Limiter struct {
	mu       sync.Mutex
	trackers map[string][]time.Time
	now      func() time.Time
}

// New returns an empty Limiter.
func New() *Limiter {
	return &Limiter{
		trackers: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Take reports whether an action identified by bucket+identifier is allowed
// right now. Allowed takes are recorded; rejected takes are not.
func (l *Limiter) Take(allowed int, window time.Duration, bucket string, identifier ...string) bool {
	key := bucket + ":" + strings.Join(identifier, ":")

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	entry := l.trackers[key]
	kept := entry[:0]
	for _, t := range entry {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= allowed {
		l.trackers[key] = kept
		return false
	}

	l.trackers[key] = append(kept, now)
	return true
}

// Bucket is a curried view of a Limiter with a fixed rate-limit definition,
// e.g. "copy command, 1 use per 15 seconds per user".
type Bucket struct {
	limiter *Limiter
	allowed int
	window  time.Duration
	name    string
}

// Bucket returns a reusable view over one fixed rate-limit definition.
func (l *Limiter) Bucket(allowed int, window time.Duration, name string) *Bucket {
	return &Bucket{limiter: l, allowed: allowed, window: window, name: name}
}

// Take reports whether the identified caller may act under this bucket's limit.
func (b *Bucket) Take(identifier ...string) bool {
	return b.limiter.Take(b.allowed, b.window, b.name, identifier...)
}
