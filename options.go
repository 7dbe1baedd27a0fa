package asynchandler

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Wrapped function during Handle.
type Option func(*options)

type options struct {
	cfg       Config
	logger    *slog.Logger
	observers []Observer
	newID     func() uuid.UUID
}

func newOptions(opts ...Option) *options {
	o := &options{
		cfg:   DefaultConfig(),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithConfig replaces the whole configuration. An empty Name keeps the current one;
// every other field is taken as given, so a zero Advisory turns the advisory off.
// Start from DefaultConfig() or ConfigFromEnv() to change a single field:
//
//	cfg := asynchandler.DefaultConfig()
//	cfg.LogFailures = true
//	asynchandler.Handle(fn, onError, asynchandler.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(o *options) {
		name := o.cfg.Name
		o.cfg = cfg
		if o.cfg.Name == "" {
			o.cfg.Name = name
		}
	}
}

// WithLogger sets the logger used for the advisory and failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver adds an observer notified after every invocation.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithName sets the component name used in logs and observed invocations.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cfg.Name = name
		}
	}
}

// WithIDGenerator overrides how invocation IDs are generated (default: UUID v4).
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}
