package statemachine

import (
	"errors"

	"food-delivery-analytics/models"
)

// deliveryTransitions is the authoritative delivery lifecycle definition.
var deliveryTransitions = []struct {
	From models.DeliveryStatus
	To   models.DeliveryStatus
}{
	{From: models.DeliveryPending, To: models.DeliveryDispatched},
	{From: models.DeliveryPending, To: models.DeliveryFailed},
	{From: models.DeliveryDispatched, To: models.DeliveryInTransit},
	{From: models.DeliveryDispatched, To: models.DeliveryFailed},
	{From: models.DeliveryInTransit, To: models.DeliveryDelivered},
	{From: models.DeliveryInTransit, To: models.DeliveryFailed},
}

type deliveryKey struct {
	From models.DeliveryStatus
	To   models.DeliveryStatus
}

var deliveryTransitionMap = func() map[deliveryKey]bool {
	m := make(map[deliveryKey]bool)
	for _, t := range deliveryTransitions {
		m[deliveryKey{t.From, t.To}] = true
	}
	return m
}()

// ValidDeliveryTransitionsFrom returns all valid next states from a given state.
func ValidDeliveryTransitionsFrom(status models.DeliveryStatus) []models.DeliveryStatus {
	var nexts []models.DeliveryStatus
	seen := map[models.DeliveryStatus]bool{}
	for _, t := range deliveryTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransitionDelivery checks whether a delivery may move between two states.
func CanTransitionDelivery(from, to models.DeliveryStatus) error {
	if deliveryTransitionMap[deliveryKey{From: from, To: to}] {
		return nil
	}
	nexts := ValidDeliveryTransitionsFrom(from)
	desc := "none (terminal state)"
	if len(nexts) > 0 {
		desc = ""
		for i, s := range nexts {
			if i > 0 {
				desc += ", "
			}
			desc += string(s)
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + desc,
	)
}
