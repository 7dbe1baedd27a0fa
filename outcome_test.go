package asynchandler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/asynchandler"
)

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pending", asynchandler.Pending.String())
	assert.Equal(t, "succeeded", asynchandler.Succeeded.String())
	assert.Equal(t, "failed_handled", asynchandler.FailedHandled.String())
	assert.Equal(t, "failed_propagated", asynchandler.FailedPropagated.String())

	assert.False(t, asynchandler.Pending.Failed())
	assert.False(t, asynchandler.Succeeded.Failed())
	assert.True(t, asynchandler.FailedHandled.Failed())
	assert.True(t, asynchandler.FailedPropagated.Failed())
}
