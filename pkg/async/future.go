package async

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout is returned by AwaitWithTimeout when the duration elapses first.
	ErrTimeout = errors.New("async: future timed out")
	// ErrNoFutures is returned by WaitAny when called without futures.
	ErrNoFutures = errors.New("async: no futures provided")
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	val  T
	err  error
	done chan struct{}
}

// Go runs fn in a new goroutine and returns a Future for its result.
// fn is responsible for its own panic handling; an unrecovered panic
// crashes the process as it would in any goroutine.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()

	return f
}

// Async executes fn asynchronously with ctx and param.
// If ctx is already canceled fn is not called and the Future resolves to ctx.Err().
func Async[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	return Go(func() (T, error) {
		// Early exit prevents running work the caller already gave up on
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		return fn(ctx, param)
	})
}

// Await blocks until the computation completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.val, f.err
}

// AwaitWithTimeout waits at most timeout for the result.
// The computation keeps running after a timeout; only the wait is abandoned.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// Done returns a channel closed when the computation completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future and returns their values in order.
// The first error encountered (in argument order) is returned alongside the values.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	var firstErr error
	for i, f := range futures {
		v, err := f.Await()
		results[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}

// WaitAny returns the index and result of the first future to complete.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type result struct {
		index int
		val   T
		err   error
	}

	// Buffered so late finishers never block
	done := make(chan result, len(futures))
	for i, f := range futures {
		go func(index int, f *Future[T]) {
			v, err := f.Await()
			done <- result{index, v, err}
		}(i, f)
	}

	res := <-done
	return res.index, res.val, res.err
}
