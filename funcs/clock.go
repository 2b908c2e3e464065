package funcs

import "time"

// Clock is the time source behind [Delay] and [Throttle]. Tests substitute a
// manual clock to fire timers deterministically.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending call created by [Clock.AfterFunc].
type Timer interface {
	// Stop prevents the call from firing. It reports false if the call
	// already fired or was stopped.
	Stop() bool
}

type wallClock struct{}

// WallClock returns a [Clock] backed by the time package.
func WallClock() Clock { return wallClock{} }

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
