package asynchandler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToError(t *testing.T) {
	t.Parallel()

	t.Run("error passes through", func(t *testing.T) {
		t.Parallel()
		err := errors.New("original")
		assert.Same(t, err, toError(err))
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		assert.EqualError(t, toError("message"), "message")
	})

	t.Run("other value", func(t *testing.T) {
		t.Parallel()
		assert.EqualError(t, toError(struct{ N int }{7}), "panic: {7}")
	})
}

func TestUnhandledError(t *testing.T) {
	t.Parallel()

	original := errors.New("Invalid operation")
	err := newUnhandledError(original)

	assert.Equal(t, "Invalid operation.\nProvide an error callback to asynchandler.Handle to handle this error.", err.Error())
	assert.ErrorIs(t, err, ErrUnhandled)
	assert.NotErrorIs(t, err, original)
	assert.Nil(t, errors.Unwrap(err))
}
