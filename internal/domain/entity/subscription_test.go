package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cmedia-api/internal/domain/entity"
)

func TestSubscriptionStatus_Valid(t *testing.T) {
	for _, s := range entity.SubscriptionStatuses {
		assert.True(t, s.Valid(), "%s debe ser válido", s)
	}
	assert.False(t, entity.SubscriptionStatus("paused").Valid())
	assert.False(t, entity.SubscriptionStatus("").Valid())
	assert.False(t, entity.SubscriptionStatus("ACTIVE").Valid(), "el enum es case sensitive")
}

func TestSubscriptionStatus_Terminal(t *testing.T) {
	assert.True(t, entity.StatusTerminated.Terminal())
	assert.True(t, entity.StatusCancelled.Terminal())
	assert.False(t, entity.StatusPending.Terminal())
	assert.False(t, entity.StatusActive.Terminal())
	assert.False(t, entity.StatusSuspended.Terminal())
}

// Los estados no terminales pueden moverse a cualquier estado válido;
// terminated y cancelled no admiten ninguna transición.
func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entity.StatusPending.CanTransitionTo(entity.StatusActive))
	assert.True(t, entity.StatusActive.CanTransitionTo(entity.StatusSuspended))
	assert.True(t, entity.StatusSuspended.CanTransitionTo(entity.StatusActive))
	assert.True(t, entity.StatusActive.CanTransitionTo(entity.StatusCancelled))

	assert.False(t, entity.StatusTerminated.CanTransitionTo(entity.StatusActive))
	assert.False(t, entity.StatusCancelled.CanTransitionTo(entity.StatusPending))
	assert.False(t, entity.StatusCancelled.CanTransitionTo(entity.StatusCancelled))

	assert.False(t, entity.StatusActive.CanTransitionTo(entity.SubscriptionStatus("paused")),
		"no se puede transicionar a un estado fuera del enum")
}
