package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusKnown(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled} {
		assert.True(t, s.Known(), string(s))
	}

	for _, s := range []Status{"", "Pending", "rescheduled", "done"} {
		assert.False(t, s.Known(), string(s))
	}
}

func TestInitialIsPending(t *testing.T) {
	assert.Equal(t, StatusPending, Initial())
}
