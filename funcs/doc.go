// Package funcs provides function combinators: wrappers that take a
// function and return one with different invocation semantics.
//
//   - [Once], [OnceFunc], [OnceErr]: run at most once and replay the result.
//   - [Memoize], [Memoize1]: cache results by argument.
//   - [Delay], [DelayContext]: run once, later, on another goroutine.
//   - [Throttle]: run at most once per window, leading and trailing.
//   - [Identity]: the function that changes nothing.
//
// # Concurrency
//
// Every wrapper owns its state and guards it with a mutex, so wrappers may
// be shared between goroutines. Delayed and trailing calls run on timer
// goroutines. A panic raised there is logged at error level through the
// configured [zap.Logger] and then re-raised; it is never swallowed.
//
// # Configuration
//
// The asynchronous combinators run on a [Scheduler], which holds the
// [Clock], the logger and an OpenTelemetry [metric.Meter]. The package-level
// functions use [DefaultScheduler], which logs nothing and records nothing.
// Pass [Option] values to get a Scheduler of your own:
//
//	logger, _ := zap.NewDevelopment()
//	s, err := funcs.NewScheduler(funcs.WithLogger(logger), funcs.WithMeter(meter))
//	s.Delay(func(args ...any) { fmt.Println(args...) }, time.Second, "hello")
//
// [metric.Meter]: https://pkg.go.dev/go.opentelemetry.io/otel/metric#Meter
// [zap.Logger]: https://pkg.go.dev/go.uber.org/zap#Logger
package funcs
