package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-delivery-analytics/models"
	"food-delivery-analytics/statemachine"
)

func TestDeliveryHappyPath(t *testing.T) {
	chain := []models.DeliveryStatus{
		models.DeliveryPending, models.DeliveryDispatched,
		models.DeliveryInTransit, models.DeliveryDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		assert.NoError(t, statemachine.CanTransitionDelivery(chain[i], chain[i+1]),
			"%s -> %s should be allowed", chain[i], chain[i+1])
	}
}

func TestDeliveryFailurePaths(t *testing.T) {
	for _, from := range []models.DeliveryStatus{
		models.DeliveryPending, models.DeliveryDispatched, models.DeliveryInTransit,
	} {
		assert.NoError(t, statemachine.CanTransitionDelivery(from, models.DeliveryFailed))
	}
	assert.Error(t, statemachine.CanTransitionDelivery(models.DeliveryDelivered, models.DeliveryFailed))
}

func TestDeliveryInvalidJumps(t *testing.T) {
	assert.Error(t, statemachine.CanTransitionDelivery(models.DeliveryPending, models.DeliveryDelivered))
	assert.Error(t, statemachine.CanTransitionDelivery(models.DeliveryDelivered, models.DeliveryPending))
}

func TestDeliveryTerminalStates(t *testing.T) {
	assert.Empty(t, statemachine.ValidDeliveryTransitionsFrom(models.DeliveryDelivered))
	assert.Empty(t, statemachine.ValidDeliveryTransitionsFrom(models.DeliveryFailed))
}
