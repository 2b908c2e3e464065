package funcs_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hasbyte1/go-underbar/funcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, 42, funcs.Identity(42))
	assert.Equal(t, "moe", funcs.Identity("moe"))
	assert.Nil(t, funcs.Identity[any](nil))
}

func TestOnceFuncRunsOnce(t *testing.T) {
	calls := 0
	wrapped := funcs.OnceFunc(func(args ...any) int {
		calls++
		return args[0].(int) * 10
	})

	assert.Equal(t, 10, wrapped(1))
	assert.Equal(t, 10, wrapped(2))
	assert.Equal(t, 10, wrapped(3, "extra"))
	assert.Equal(t, 1, calls)
}

func TestOnceFuncNoArgs(t *testing.T) {
	calls := 0
	wrapped := funcs.OnceFunc(func(args ...any) int {
		calls++
		return len(args)
	})
	assert.Equal(t, 0, wrapped())
	assert.Equal(t, 0, wrapped(1, 2))
	assert.Equal(t, 1, calls)
}

func TestOnce(t *testing.T) {
	var n int
	next := funcs.Once(func() int { n++; return n })
	assert.Equal(t, 1, next())
	assert.Equal(t, 1, next())
	assert.Equal(t, 1, n)
}

func TestOncePanicDoesNotFire(t *testing.T) {
	calls := 0
	wrapped := funcs.OnceFunc(func(args ...any) string {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return "ok"
	})

	assert.PanicsWithValue(t, "boom", func() { wrapped() })
	assert.Equal(t, "ok", wrapped())
	assert.Equal(t, "ok", wrapped())
	assert.Equal(t, 2, calls)
}

func TestOnceErr(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	wrapped := funcs.OnceErr(func(args ...any) (string, error) {
		calls++
		if calls == 1 {
			return "", errBoom
		}
		return args[0].(string), nil
	})

	_, err := wrapped("first")
	assert.ErrorIs(t, err, errBoom)

	v, err := wrapped("second")
	require.NoError(t, err)
	assert.Equal(t, "second", v)

	v, err = wrapped("third")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
	assert.Equal(t, 2, calls)
}

func TestOnceFuncConcurrent(t *testing.T) {
	var calls atomic.Int32
	wrapped := funcs.OnceFunc(func(args ...any) int32 {
		return calls.Add(1)
	})

	var wg sync.WaitGroup
	results := make([]int32, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = wrapped(i)
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, r := range results {
		assert.EqualValues(t, 1, r)
	}
}
