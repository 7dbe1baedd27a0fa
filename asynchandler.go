package asynchandler

import (
	"context"
	"time"

	"github.com/dmitrymomot/asynchandler/core/logger"
	"github.com/dmitrymomot/asynchandler/pkg/async"
)

// Func is an operation that may fail by returning an error or by panicking.
// args are passed through exactly as the caller supplied them.
type Func[T any] func(ctx context.Context, args ...any) (T, error)

// ErrorCallback receives a failure together with the arguments of the call that produced it.
type ErrorCallback func(err error, args ...any)

// Wrapped is the function returned by Handle. It has the calling convention of Func
// and is safe for concurrent use.
type Wrapped[T any] func(ctx context.Context, args ...any) (T, error)

// Handle wraps fn so that its failures go to onError instead of escaping.
//
// A failure is a non-nil error returned by fn or a panic raised inside it.
// With onError set, the failure is passed to onError(err, args...) and the call
// returns the zero value and a nil error. With onError nil, the call returns an
// *UnhandledError carrying the text of the failure, and a warning is logged once here.
func Handle[T any](fn Func[T], onError ErrorCallback, opts ...Option) Wrapped[T] {
	o := newOptions(opts...)

	if onError == nil && o.cfg.Advisory {
		o.logger.Warn("handler created without an error callback; failures will not be tracked unless one is provided",
			logger.Component(o.cfg.Name))
	}

	return func(ctx context.Context, args ...any) (T, error) {
		start := time.Now()

		val, recovered, err := call(ctx, fn, args)
		if err == nil {
			o.finish(ctx, Succeeded, nil, nil, start)
			return val, nil
		}

		var zero T
		if onError != nil {
			o.finish(ctx, FailedHandled, err, recovered, start, args...)
			onError(err, args...)
			return zero, nil
		}

		o.finish(ctx, FailedPropagated, err, recovered, start, args...)
		return zero, newUnhandledError(err)
	}
}

// Call is equivalent to w(ctx, args...).
func (w Wrapped[T]) Call(ctx context.Context, args ...any) (T, error) {
	return w(ctx, args...)
}

// Go invokes w in a new goroutine and returns a Future for the result.
// The Future resolves to exactly what a synchronous call would return.
// A panic raised by the error callback or an observer, which a synchronous
// call would re-panic, resolves the Future with that panic as an error.
func (w Wrapped[T]) Go(ctx context.Context, args ...any) *async.Future[T] {
	return async.Go(func() (val T, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				val, err = zero, toError(r)
			}
		}()
		return w(ctx, args...)
	})
}

// call runs fn and converts a panic into an error.
// recovered holds the raw panic value, nil when fn returned normally.
func call[T any](ctx context.Context, fn Func[T], args []any) (val T, recovered any, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			val, recovered, err = zero, r, toError(r)
		}
	}()
	val, err = fn(ctx, args...)
	return val, nil, err
}

func (o *options) finish(ctx context.Context, outcome Outcome, err error, recovered any, start time.Time, args ...any) {
	logFailure := outcome.Failed() && o.cfg.LogFailures
	if !logFailure && len(o.observers) == 0 {
		return
	}

	inv := Invocation{
		ID:       o.newID(),
		Name:     o.cfg.Name,
		Outcome:  outcome,
		Err:      err,
		Duration: time.Since(start),
	}

	if logFailure {
		o.logger.DebugContext(ctx, "wrapped function failed",
			logger.Component(inv.Name),
			logger.InvocationID(inv.ID),
			logger.Result(outcome.String()),
			logger.Duration(inv.Duration),
			logger.Args(args...),
			logger.Error(err),
			logger.Panic(recovered))
	}

	for _, obs := range o.observers {
		obs.Observe(ctx, inv)
	}
}
