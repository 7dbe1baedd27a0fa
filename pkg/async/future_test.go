package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynchandler/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()

	t.Run("resolves value", func(t *testing.T) {
		t.Parallel()
		f := async.Go(func() ([]int, error) {
			time.Sleep(10 * time.Millisecond)
			return []int{4, 6, 7, 23, 5}, nil
		})

		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, []int{4, 6, 7, 23, 5}, v)
		assert.True(t, f.IsComplete())
	})

	t.Run("resolves error", func(t *testing.T) {
		t.Parallel()
		expectedErr := errors.New("invalid operation")
		f := async.Go(func() (int, error) {
			return 0, expectedErr
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("await is repeatable", func(t *testing.T) {
		t.Parallel()
		f := async.Go(func() (string, error) { return "ok", nil })

		v1, err1 := f.Await()
		v2, err2 := f.Await()
		assert.Equal(t, v1, v2)
		assert.Equal(t, err1, err2)
	})
}

func TestAsyncContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := async.Async(ctx, 42, func(ctx context.Context, n int) (int, error) {
		called = true
		return n, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAsyncPassesParam(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), "names", func(ctx context.Context, s string) (int, error) {
		return len(s), nil
	})

	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Go(func() (int, error) {
		<-release
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("second failed")
	futures := []*async.Future[int]{
		async.Go(func() (int, error) { time.Sleep(20 * time.Millisecond); return 1, nil }),
		async.Go(func() (int, error) { return 0, expectedErr }),
		async.Go(func() (int, error) { return 3, nil }),
	}

	values, err := async.WaitAll(futures...)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, []int{1, 0, 3}, values)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()

	t.Run("returns first completed", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		futures := []*async.Future[string]{
			async.Go(func() (string, error) { <-release; return "slow", nil }),
			async.Go(func() (string, error) { return "fast", nil }),
		}

		idx, v, err := async.WaitAny(futures...)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, "fast", v)
	})

	t.Run("no futures", func(t *testing.T) {
		t.Parallel()
		idx, _, err := async.WaitAny[int]()
		assert.Equal(t, -1, idx)
		assert.ErrorIs(t, err, async.ErrNoFutures)
	})
}
