package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/asynchandler"
)

// Func is a request handler following the (w, r, next) middleware convention.
// Returning an error or panicking both count as a failure.
type Func func(w http.ResponseWriter, r *http.Request, next http.Handler) error

// ErrorHandler receives a failure together with the arguments of the failed call.
type ErrorHandler func(err error, w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap returns a Func with the same calling convention as fn whose failures go to onError.
// With onError nil, failures are returned as *asynchandler.UnhandledError.
// The request context is used as the invocation context.
func Wrap(fn Func, onError ErrorHandler, opts ...asynchandler.Option) Func {
	var cb asynchandler.ErrorCallback
	if onError != nil {
		cb = func(err error, args ...any) {
			w, r, next := unpack(args)
			onError(err, w, r, next)
		}
	}

	wrapped := asynchandler.Handle(func(_ context.Context, args ...any) (struct{}, error) {
		w, r, next := unpack(args)
		return struct{}{}, fn(w, r, next)
	}, cb, opts...)

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
		ctx := context.Background()
		if r != nil {
			ctx = r.Context()
		}
		_, err := wrapped(ctx, w, r, next)
		return err
	}
}

// Middleware wraps fn and adapts it to net/http middleware.
// A failure that is not absorbed by onError produces a 500 response,
// unless the handler already started writing one.
func Middleware(fn Func, onError ErrorHandler, opts ...asynchandler.Option) func(http.Handler) http.Handler {
	wrapped := Wrap(fn, onError, opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := newResponseWriter(w)
			if err := wrapped(ww, r, next); err != nil {
				defaultErrorHandler(ww, r, err)
			}
		})
	}
}

// HandlerFunc wraps a terminal handler that has no next step.
func HandlerFunc(fn func(w http.ResponseWriter, r *http.Request) error, onError func(err error, w http.ResponseWriter, r *http.Request), opts ...asynchandler.Option) http.Handler {
	var eh ErrorHandler
	if onError != nil {
		eh = func(err error, w http.ResponseWriter, r *http.Request, _ http.Handler) {
			onError(err, w, r)
		}
	}

	return Middleware(func(w http.ResponseWriter, r *http.Request, _ http.Handler) error {
		return fn(w, r)
	}, eh, opts...)(nil)
}

// unpack restores the arguments passed to the wrapped function.
// Missing or nil values come back as nil.
func unpack(args []any) (w http.ResponseWriter, r *http.Request, next http.Handler) {
	if len(args) > 0 {
		w, _ = args[0].(http.ResponseWriter)
	}
	if len(args) > 1 {
		r, _ = args[1].(*http.Request)
	}
	if len(args) > 2 {
		next, _ = args[2].(http.Handler)
	}
	return w, r, next
}

// defaultErrorHandler responds with 500 if nothing has been written yet.
func defaultErrorHandler(w *responseWriter, _ *http.Request, _ error) {
	// Prevent double-writing responses which causes HTTP protocol errors
	if w.Written() {
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
