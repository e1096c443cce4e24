package store

import (
	"time"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// CreateTracking inserts the delivery row for an order. There is exactly one
// per order; a second insert is rejected by the unique index.
func (s *Store) CreateTracking(t *models.DeliveryTracking) error {
	if t.DeliveryStatus == "" {
		t.DeliveryStatus = models.DeliveryPending
	}
	if err := validation.Tracking(t); err != nil {
		return err
	}
	var order models.Order
	if err := s.db.First(&order, t.OrderID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "delivery_tracking", Constraint: "fk_delivery_tracking_order",
				Message: "order does not exist"}
		}
		return err
	}
	return translate("delivery_tracking", s.db.Create(t).Error)
}

// MarkDispatched records dispatch of an order's delivery.
func (s *Store) MarkDispatched(orderID uint, partnerID uint, at, estimated time.Time) error {
	tracking, err := s.trackingForOrder(orderID)
	if err != nil {
		return err
	}
	tracking.DispatchTime = at
	tracking.EstimatedDeliveryTime = estimated
	tracking.DeliveryPartnerID = partnerID
	tracking.DeliveryStatus = models.DeliveryDispatched
	if err := validation.Tracking(tracking); err != nil {
		return err
	}
	return translate("delivery_tracking", s.db.Save(tracking).Error)
}

// MarkDelivered records the actual delivery time, which must not precede
// the dispatch time.
func (s *Store) MarkDelivered(orderID uint, at time.Time) error {
	tracking, err := s.trackingForOrder(orderID)
	if err != nil {
		return err
	}
	tracking.ActualDeliveryTime = &at
	tracking.DeliveryStatus = models.DeliveryDelivered
	if err := validation.Tracking(tracking); err != nil {
		return err
	}
	return translate("delivery_tracking", s.db.Save(tracking).Error)
}

// UpdateDeliveryStatus sets the delivery status to any valid enum value.
func (s *Store) UpdateDeliveryStatus(orderID uint, status models.DeliveryStatus) error {
	if !status.Valid() {
		return &validation.ConstraintError{Table: "delivery_tracking", Constraint: "chk_delivery_tracking_status_enum",
			Message: "unknown delivery_status " + string(status)}
	}
	tracking, err := s.trackingForOrder(orderID)
	if err != nil {
		return err
	}
	tracking.DeliveryStatus = status
	return translate("delivery_tracking", s.db.Save(tracking).Error)
}

func (s *Store) trackingForOrder(orderID uint) (*models.DeliveryTracking, error) {
	var tracking models.DeliveryTracking
	if err := s.db.Where("order_id = ?", orderID).First(&tracking).Error; err != nil {
		if isNotFound(err) {
			return nil, notFound("delivery tracking for order", orderID)
		}
		return nil, err
	}
	return &tracking, nil
}
