// Package asynchandler wraps operations that may fail so their failures are funneled
// to a caller-supplied error callback instead of escaping to the caller.
//
// A failure is either a non-nil error returned by the wrapped function or a panic
// raised inside it. Both are treated the same way.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/asynchandler"
//
//	fetch := asynchandler.Handle(func(ctx context.Context, args ...any) ([]User, error) {
//		return repo.Users(ctx, args[0].(string))
//	}, func(err error, args ...any) {
//		slog.Error("fetch users failed", "error", err, "org", args[0])
//	})
//
//	users, _ := fetch(ctx, "acme")
//
// With a callback the call never returns an error: on failure the callback runs with
// the error and the original arguments, and the call returns the zero value.
//
// # Without a Callback
//
// When the callback is nil, Handle logs a one-time warning and the wrapped function
// returns an *UnhandledError on failure. Its message is the text of the original error
// followed by a hint to provide a callback; the original error value itself is not kept.
//
//	_, err := asynchandler.Handle(fn, nil)(ctx)
//	if errors.Is(err, asynchandler.ErrUnhandled) {
//		// ...
//	}
//
// # Asynchronous Calls
//
// Wrapped.Go runs the call in its own goroutine and returns a Future:
//
//	future := fetch.Go(ctx, "acme")
//	users, err := future.Await()
//
// # Observation
//
// WithObserver registers an Observer notified with every finished Invocation
// (outcome, error, duration, ID). See integration/metrics/prometheus for a
// Prometheus-backed implementation.
//
// # Related Packages
//
//   - core/handler: adapters for net/http request pipelines using the (w, r, next) convention
//   - core/config: environment configuration loading (ConfigFromEnv)
//   - core/logger: slog attribute helpers
//   - pkg/async: generic futures
package asynchandler
