package funcs

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

var (
	resultHit  = attribute.String("result", "hit")
	resultMiss     = attribute.String("result", "miss")
	resultUncached = attribute.String("result", "uncached")
)

// memoCache maps keys to results. With max > 0 it keeps two generations:
// stores go to cur, and when cur reaches max it becomes old and a fresh cur
// is started. A hit in old is promoted into cur.
type memoCache[K comparable, R any] struct {
	mu  sync.Mutex
	max int
	cur map[K]R
	old map[K]R
}

func newMemoCache[K comparable, R any](limit int) *memoCache[K, R] {
	return &memoCache[K, R]{max: limit, cur: make(map[K]R)}
}

func (c *memoCache[K, R]) load(k K) (R, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.cur[k]; ok {
		return v, true
	}
	if v, ok := c.old[k]; ok {
		delete(c.old, k)
		c.storeLocked(k, v)
		return v, true
	}
	var zero R
	return zero, false
}

func (c *memoCache[K, R]) store(k K, v R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storeLocked(k, v)
}

func (c *memoCache[K, R]) storeLocked(k K, v R) {
	c.cur[k] = v
	if c.max > 0 && len(c.cur) >= c.max {
		c.old, c.cur = c.cur, make(map[K]R, c.max)
	}
}

func (c *memoCache[K, R]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cur) + len(c.old)
}

// Memo is a memoized function. Call it through [Memo.Call].
type Memo[K comparable, R any] struct {
	fn      func(args ...any) (R, error)
	key     func(args []any) (K, bool)
	cache   *memoCache[K, R]
	lookups metric.Int64Counter
}

// Memoize returns a wrapper that caches fn's results by argument list.
//
// The cache key is each argument's fmt.Sprint form joined with ",", so
// arguments with the same string form share an entry: Call(1) and Call("1")
// hit the same result. Use [Memoize1] to key on the argument value itself.
//
// A call that returns an error, or panics, is not cached. The lock is not
// held while fn runs, so fn may recurse through the wrapper; two concurrent
// misses on one key may both run fn. Options other than [WithMaxEntries] and
// [WithMeter] are ignored.
//
//	fib := funcs.Memoize(func(args ...any) (int, error) { ... })
//	v, err := fib.Call(40)
func Memoize[R any](fn func(args ...any) (R, error), opts ...Option) *Memo[string, R] {
	return newMemo(fn, joinKey, opts)
}

// Memoize1 caches a single-argument function keyed by the argument value.
// Errors and panics are not cached.
//
// When A is an interface type, a value whose dynamic type cannot be a map
// key (a slice, say) is passed to fn on every call and never cached.
func Memoize1[A comparable, R any](fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	m := newMemo(func(args ...any) (R, error) {
		a, _ := args[0].(A)
		return fn(a)
	}, func(args []any) (A, bool) {
		a, _ := args[0].(A)
		return a, hashable(a)
	}, opts)
	return func(a A) (R, error) { return m.Call(a) }
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.Comparable()
}

func newMemo[K comparable, R any](fn func(args ...any) (R, error), key func([]any) (K, bool), opts []Option) *Memo[K, R] {
	cfg := newConfig(opts)
	lookups, err := cfg.Meter.Int64Counter("underbar.memoize.lookups",
		metric.WithDescription("memoized lookups by result"))
	if err != nil {
		cfg.Logger.Warn("memoize metrics disabled", zap.Error(err))
		lookups = noop.Int64Counter{}
	}
	return &Memo[K, R]{fn: fn, key: key, cache: newMemoCache[K, R](cfg.MaxEntries), lookups: lookups}
}

// Call returns the cached result for args, computing and storing it on a
// miss.
func (m *Memo[K, R]) Call(args ...any) (R, error) {
	k, ok := m.key(args)
	if !ok {
		m.lookups.Add(context.Background(), 1, metric.WithAttributes(resultUncached))
		return m.fn(args...)
	}
	if v, ok := m.cache.load(k); ok {
		m.lookups.Add(context.Background(), 1, metric.WithAttributes(resultHit))
		return v, nil
	}
	m.lookups.Add(context.Background(), 1, metric.WithAttributes(resultMiss))
	v, err := m.fn(args...)
	if err != nil {
		return v, err
	}
	m.cache.store(k, v)
	return v, nil
}

// Len returns the number of cached results.
func (m *Memo[K, R]) Len() int { return m.cache.size() }

func joinKey(args []any) (string, bool) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ","), true
}
