// Package statemachine publishes the transition tables for order and
// delivery statuses. The source schema left status ordering unconstrained,
// so the stores do not apply these tables on their own; callers that want
// ordered lifecycles validate through CanTransition before writing.
package statemachine

import (
	"errors"

	"food-delivery-analytics/models"
)

// orderTransitions is the authoritative order lifecycle definition.
var orderTransitions = []struct {
	From models.OrderStatus
	To   models.OrderStatus
}{
	{From: models.OrderPlaced, To: models.OrderConfirmed},
	{From: models.OrderPlaced, To: models.OrderCancelled},
	{From: models.OrderConfirmed, To: models.OrderPreparing},
	{From: models.OrderConfirmed, To: models.OrderCancelled},
	{From: models.OrderPreparing, To: models.OrderDispatched},
	{From: models.OrderPreparing, To: models.OrderCancelled},
	{From: models.OrderDispatched, To: models.OrderDelivered},
}

type orderKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var orderTransitionMap = func() map[orderKey]bool {
	m := make(map[orderKey]bool)
	for _, t := range orderTransitions {
		m[orderKey{t.From, t.To}] = true
	}
	return m
}()

// ValidOrderTransitionsFrom returns all valid next states from a given state.
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range orderTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransitionOrder checks whether an order may move between two states.
func CanTransitionOrder(from, to models.OrderStatus) error {
	if orderTransitionMap[orderKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeOrderValidFrom(from),
	)
}

func describeOrderValidFrom(status models.OrderStatus) string {
	nexts := ValidOrderTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
