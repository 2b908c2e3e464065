package funcs

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Scheduler owns the clock, logger and counters behind the asynchronous
// combinators. The zero value is not usable; use [NewScheduler] or
// [DefaultScheduler].
type Scheduler struct {
	log       *zap.Logger
	clock     Clock
	delays    metric.Int64Counter
	throttles metric.Int64Counter
}

// NewScheduler builds a Scheduler from [DefaultConfig] with opts applied.
// It fails only when the meter cannot create its counters.
func NewScheduler(opts ...Option) (*Scheduler, error) {
	cfg := newConfig(opts)
	delays, err := cfg.Meter.Int64Counter("underbar.delay.calls",
		metric.WithDescription("delayed calls by outcome"))
	if err != nil {
		return nil, fmt.Errorf("funcs: create delay counter: %w", err)
	}
	throttles, err := cfg.Meter.Int64Counter("underbar.throttle.calls",
		metric.WithDescription("throttled calls by outcome"))
	if err != nil {
		return nil, fmt.Errorf("funcs: create throttle counter: %w", err)
	}
	return &Scheduler{
		log:       cfg.Logger,
		clock:     cfg.Clock,
		delays:    delays,
		throttles: throttles,
	}, nil
}

var defaultScheduler = sync.OnceValue(func() *Scheduler {
	s, err := NewScheduler()
	if err != nil {
		// The no-op meter never fails.
		panic(err)
	}
	return s
})

// DefaultScheduler returns the process-wide Scheduler used by the
// package-level [Delay], [DelayContext] and [Throttle]. It logs nothing and
// records no metrics.
func DefaultScheduler() *Scheduler { return defaultScheduler() }

// Delay calls fn(args...) once, on another goroutine, after at least wait
// has elapsed. A negative wait is treated as zero. The call cannot be
// cancelled; use [Scheduler.DelayContext] for that.
//
// A panic in fn is logged and then re-raised on the timer goroutine.
func (s *Scheduler) Delay(fn func(args ...any), wait time.Duration, args ...any) {
	s.DelayContext(context.Background(), fn, wait, args...)
}

// DelayContext is like [Scheduler.Delay] but drops the call if ctx is done
// before it fires.
func (s *Scheduler) DelayContext(ctx context.Context, fn func(args ...any), wait time.Duration, args ...any) {
	if wait < 0 {
		wait = 0
	}
	args = slices.Clone(args)
	fired := make(chan struct{})

	timer := s.clock.AfterFunc(wait, func() {
		close(fired)
		if ctx.Err() != nil {
			s.delays.Add(context.Background(), 1, outcome("cancelled"))
			return
		}
		s.delays.Add(context.Background(), 1, outcome("fired"))
		defer s.recoverCallback("delay")
		fn(args...)
	})
	s.log.Debug("delay scheduled", zap.Duration("wait", wait), zap.Int("args", len(args)))

	done := ctx.Done()
	if done == nil {
		return
	}
	go func() {
		select {
		case <-done:
			if timer.Stop() {
				s.delays.Add(context.Background(), 1, outcome("cancelled"))
				s.log.Debug("delay cancelled", zap.Error(ctx.Err()))
			}
		case <-fired:
		}
	}()
}

// recoverCallback logs a panic escaping a scheduled callback and re-panics.
// It must be deferred directly.
func (s *Scheduler) recoverCallback(combinator string) {
	if r := recover(); r != nil {
		s.log.Error("callback panicked",
			zap.String("combinator", combinator),
			zap.Any("panic", r),
			zap.StackSkip("stack", 1),
		)
		panic(r)
	}
}

func outcome(v string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("outcome", v))
}

// Delay calls fn(args...) after wait on the [DefaultScheduler].
//
//	funcs.Delay(func(args ...any) { fmt.Println(args...) }, time.Second, "logged later")
func Delay(fn func(args ...any), wait time.Duration, args ...any) {
	DefaultScheduler().Delay(fn, wait, args...)
}

// DelayContext calls fn(args...) after wait on the [DefaultScheduler] unless
// ctx is done first.
func DelayContext(ctx context.Context, fn func(args ...any), wait time.Duration, args ...any) {
	DefaultScheduler().DelayContext(ctx, fn, wait, args...)
}
