package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusProcessing, StatusShipped},
		{StatusProcessing, StatusDelivered},
		{StatusProcessing, StatusCancelled},
		{StatusShipped, StatusDelivered},
		{StatusShipped, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	t.Run("TerminalStatesAreSticky", func(t *testing.T) {
		for _, terminal := range []Status{StatusDelivered, StatusCancelled} {
			for _, to := range []Status{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
				assert.False(t, CanTransition(terminal, to), "%s -> %s should be rejected", terminal, to)
			}
		}
	})

	t.Run("NoBackwardTransitions", func(t *testing.T) {
		assert.False(t, CanTransition(StatusShipped, StatusProcessing))
		assert.False(t, CanTransition(StatusProcessing, StatusProcessing))
	})
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusProcessing))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus(Status("Refunded")))
	assert.False(t, ValidStatus(Status("")))
}
