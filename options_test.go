package asynchandler_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynchandler"
	"github.com/dmitrymomot/asynchandler/core/config"
)

func TestWithObserver(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c2d4e-0a4b-4c1e-9a53-2b0f0d1e7c11")
	failure := errors.New("failed")

	var got []asynchandler.Invocation
	obs := asynchandler.ObserverFunc(func(ctx context.Context, inv asynchandler.Invocation) {
		got = append(got, inv)
	})

	wrapped := asynchandler.Handle(func(ctx context.Context, args ...any) (int, error) {
		if len(args) == 0 {
			return 0, failure
		}
		return 1, nil
	}, func(error, ...any) {},
		asynchandler.WithObserver(obs),
		asynchandler.WithObserver(nil),
		asynchandler.WithName("lookup"),
		asynchandler.WithIDGenerator(func() uuid.UUID { return id }))

	_, _ = wrapped(context.Background(), "x")
	_, _ = wrapped(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "lookup", got[0].Name)
	assert.Equal(t, asynchandler.Succeeded, got[0].Outcome)
	assert.NoError(t, got[0].Err)

	assert.Equal(t, asynchandler.FailedHandled, got[1].Outcome)
	assert.Same(t, failure, got[1].Err)
	assert.GreaterOrEqual(t, got[1].Duration.Nanoseconds(), int64(0))
}

func TestObserverRunsBeforeCallback(t *testing.T) {
	t.Parallel()

	var order []string
	wrapped := asynchandler.Handle(func(ctx context.Context, _ ...any) (int, error) {
		return 0, errors.New("failed")
	}, func(error, ...any) {
		order = append(order, "callback")
	}, asynchandler.WithObserver(asynchandler.ObserverFunc(func(context.Context, asynchandler.Invocation) {
		order = append(order, "observer")
	})))

	_, _ = wrapped(context.Background())
	assert.Equal(t, []string{"observer", "callback"}, order)
}

func TestWithConfigKeepsName(t *testing.T) {
	t.Parallel()

	var name string
	wrapped := asynchandler.Handle(func(ctx context.Context, _ ...any) (int, error) {
		return 0, nil
	}, func(error, ...any) {},
		asynchandler.WithName("custom"),
		asynchandler.WithConfig(asynchandler.Config{Advisory: false}),
		asynchandler.WithObserver(asynchandler.ObserverFunc(func(_ context.Context, inv asynchandler.Invocation) {
			name = inv.Name
		})))

	_, _ = wrapped(context.Background())
	assert.Equal(t, "custom", name)
}

func TestConfigFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("ASYNC_HANDLER_ADVISORY", "false")
	t.Setenv("ASYNC_HANDLER_LOG_FAILURES", "true")
	t.Setenv("ASYNC_HANDLER_NAME", "billing")

	cfg, err := asynchandler.ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Advisory)
	assert.True(t, cfg.LogFailures)
	assert.Equal(t, "billing", cfg.Name)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := asynchandler.DefaultConfig()
	assert.True(t, cfg.Advisory)
	assert.False(t, cfg.LogFailures)
	assert.Equal(t, "asynchandler", cfg.Name)
}

func TestWithConfigReplacesAllFields(t *testing.T) {
	t.Parallel()

	fn := func(ctx context.Context, _ ...any) (int, error) { return 0, nil }

	t.Run("partial config turns advisory off", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		asynchandler.Handle(fn, nil, asynchandler.WithLogger(log), asynchandler.WithConfig(asynchandler.Config{Name: "x"}))
		assert.Empty(t, buf.String())
	})

	t.Run("default config keeps advisory on", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		cfg := asynchandler.DefaultConfig()
		cfg.Name = "x"
		asynchandler.Handle(fn, nil, asynchandler.WithLogger(log), asynchandler.WithConfig(cfg))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "component=x")
	})
}
