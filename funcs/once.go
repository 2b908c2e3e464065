package funcs

import "sync"

// Identity returns v unchanged. It is the default transform wherever a
// function value is required but no transformation is wanted.
func Identity[T any](v T) T { return v }

type onceGuard[R any] struct {
	mu     sync.Mutex
	done   bool
	result R
}

// OnceFunc returns a wrapper that calls fn on its first invocation and
// returns that result from every later invocation, whatever the arguments.
//
// The guard fires only when fn returns normally: if fn panics, the panic
// propagates and the next call tries again. Concurrent callers block until
// the first call finishes. fn must not call the wrapper itself.
//
//	initialize := funcs.OnceFunc(func(args ...any) *Pool { return newPool(args[0].(int)) })
//	p := initialize(8)
//	p2 := initialize(16) // same pool; size 16 is ignored
func OnceFunc[R any](fn func(args ...any) R) func(args ...any) R {
	g := &onceGuard[R]{}
	return func(args ...any) R {
		g.mu.Lock()
		defer g.mu.Unlock()
		if !g.done {
			g.result = fn(args...)
			g.done = true
		}
		return g.result
	}
}

// Once is [OnceFunc] for functions without arguments.
func Once[R any](fn func() R) func() R {
	wrapped := OnceFunc(func(...any) R { return fn() })
	return func() R { return wrapped() }
}

// OnceErr is like [OnceFunc] for fallible functions. A call that returns a
// non-nil error does not fire the guard; the error is returned to that
// caller and the next call runs fn again.
func OnceErr[R any](fn func(args ...any) (R, error)) func(args ...any) (R, error) {
	g := &onceGuard[R]{}
	return func(args ...any) (R, error) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.done {
			return g.result, nil
		}
		r, err := fn(args...)
		if err != nil {
			return r, err
		}
		g.result, g.done = r, true
		return r, nil
	}
}
