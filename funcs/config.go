package funcs

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/hasbyte1/go-underbar/funcs"

// Config holds the runtime dependencies shared by the combinators in this
// package.
type Config struct {
	// Logger receives lifecycle lines at debug level and callback panics at
	// error level. Defaults to a no-op logger.
	Logger *zap.Logger

	// Clock schedules delayed and trailing calls. Defaults to the wall clock.
	Clock Clock

	// Meter creates the hit/miss and call counters. Defaults to a no-op
	// meter.
	Meter metric.Meter

	// MaxEntries bounds a [Memoize] cache. Zero or negative means unbounded.
	MaxEntries int
}

// DefaultConfig returns a [Config] populated with no-op observability and
// the wall clock.
func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
		Clock:  WallClock(),
		Meter:  noop.NewMeterProvider().Meter(instrumentationName),
	}
}

// Option is a functional option applied on top of [DefaultConfig].
type Option func(*Config)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithClock sets the clock used for timers. A nil clock is ignored.
func WithClock(clk Clock) Option {
	return func(c *Config) {
		if clk != nil {
			c.Clock = clk
		}
	}
}

// WithMeter sets the meter counters are created from. A nil meter is
// ignored.
//
//	provider := sdkmetric.NewMeterProvider(...)
//	fib := funcs.Memoize1(slowFib, funcs.WithMeter(provider.Meter("fib")))
func WithMeter(m metric.Meter) Option {
	return func(c *Config) {
		if m != nil {
			c.Meter = m
		}
	}
}

// WithMaxEntries bounds a memoization cache. Once n entries have been
// stored, the cache rotates generations: entries not read since the last
// rotation are dropped at the next one, so at most 2n results are retained.
func WithMaxEntries(n int) Option {
	return func(c *Config) { c.MaxEntries = n }
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
