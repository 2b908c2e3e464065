package funcs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Throttler wraps a function so that it runs at most once per window.
//
// The policy is leading plus trailing. A call made when no invocation
// happened in the last wait runs fn immediately. Calls that arrive inside
// the window are coalesced into a single trailing invocation, scheduled for
// the end of the window and run with the most recent arguments. Every call
// returns the result of the most recent completed invocation.
//
// A Throttler is safe for concurrent use. The trailing invocation runs on a
// timer goroutine.
type Throttler[R any] struct {
	fn    func(args ...any) R
	wait  time.Duration
	sched *Scheduler

	mu      sync.Mutex
	invoked bool
	last    time.Time
	pending Timer
	args    []any
	gen     uint64
	result  R
}

// Throttle returns a [Throttler] around fn on the [DefaultScheduler], or on
// a new Scheduler when opts are given.
// Returns [ErrInvalidWait] when wait is negative.
//
//	save, _ := funcs.Throttle(func(args ...any) error { return store.Save(args[0]) }, time.Second)
//	for ev := range edits {
//	    save.Call(ev)
//	}
func Throttle[R any](fn func(args ...any) R, wait time.Duration, opts ...Option) (*Throttler[R], error) {
	s := DefaultScheduler()
	if len(opts) > 0 {
		var err error
		if s, err = NewScheduler(opts...); err != nil {
			return nil, err
		}
	}
	return ThrottleOn(s, fn, wait)
}

// ThrottleOn is like [Throttle] but uses s for timers, logging and metrics.
func ThrottleOn[R any](s *Scheduler, fn func(args ...any) R, wait time.Duration) (*Throttler[R], error) {
	if wait < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidWait, wait)
	}
	return &Throttler[R]{fn: fn, wait: wait, sched: s}, nil
}

// Call invokes fn now if the window has elapsed, otherwise records args for
// the trailing invocation. It returns the most recent result.
func (t *Throttler[R]) Call(args ...any) R {
	t.mu.Lock()
	now := t.sched.clock.Now()
	if !t.invoked || now.Sub(t.last) >= t.wait {
		t.stopPendingLocked()
		t.invoked, t.last = true, now
		t.mu.Unlock()

		t.sched.throttles.Add(context.Background(), 1, outcome("leading"))
		r := t.fn(args...)
		t.mu.Lock()
		t.result = r
		t.mu.Unlock()
		return r
	}

	t.args = append(t.args[:0], args...)
	if t.pending == nil {
		remaining := t.wait - now.Sub(t.last)
		gen := t.gen
		t.pending = t.sched.clock.AfterFunc(remaining, func() { t.fire(gen) })
		t.sched.log.Debug("throttle deferred call", zap.Duration("remaining", remaining))
	}
	t.sched.throttles.Add(context.Background(), 1, outcome("deferred"))
	r := t.result
	t.mu.Unlock()
	return r
}

func (t *Throttler[R]) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.pending == nil {
		t.mu.Unlock()
		return
	}
	args := t.args
	t.pending, t.args = nil, nil
	t.gen++
	t.last = t.sched.clock.Now()
	t.mu.Unlock()

	t.sched.throttles.Add(context.Background(), 1, outcome("trailing"))
	defer t.sched.recoverCallback("throttle")
	r := t.fn(args...)
	t.mu.Lock()
	t.result = r
	t.mu.Unlock()
}

// Cancel drops a pending trailing invocation and resets the window, so the
// next Call runs immediately.
func (t *Throttler[R]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopPendingLocked() {
		t.sched.throttles.Add(context.Background(), 1, outcome("cancelled"))
		t.sched.log.Debug("throttle cancelled pending call")
	}
	t.invoked = false
}

// Pending reports whether a trailing invocation is scheduled.
func (t *Throttler[R]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// stopPendingLocked reports whether there was a pending call to stop.
func (t *Throttler[R]) stopPendingLocked() bool {
	if t.pending == nil {
		return false
	}
	t.pending.Stop()
	t.pending, t.args = nil, nil
	t.gen++
	return true
}
