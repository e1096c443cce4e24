package models

import "time"

// DeliveryStatus represents the state of a dispatched delivery.
type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "Pending"
	DeliveryDispatched DeliveryStatus = "Dispatched"
	DeliveryInTransit  DeliveryStatus = "In Transit"
	DeliveryDelivered  DeliveryStatus = "Delivered"
	DeliveryFailed     DeliveryStatus = "Failed"
)

var AllDeliveryStatuses = []DeliveryStatus{
	DeliveryPending, DeliveryDispatched, DeliveryInTransit,
	DeliveryDelivered, DeliveryFailed,
}

func (s DeliveryStatus) Valid() bool {
	for _, v := range AllDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DeliveryTracking is a 1:1 child of Order and is removed with it.
// ActualDeliveryTime, once set, must not precede DispatchTime.
type DeliveryTracking struct {
	ID                    uint           `json:"delivery_id" gorm:"column:delivery_id;primaryKey"`
	OrderID               uint           `json:"order_id" gorm:"uniqueIndex:uq_delivery_tracking_order_id;not null"`
	DispatchTime          time.Time      `json:"dispatch_time"`
	EstimatedDeliveryTime time.Time      `json:"estimated_delivery_time"`
	ActualDeliveryTime    *time.Time     `json:"actual_delivery_time"`
	DeliveryPartnerID     uint           `json:"delivery_partner_id"`
	DeliveryStatus        DeliveryStatus `json:"delivery_status" gorm:"not null;default:'Pending'"`
}

// TableName keeps the singular table name used by the source schema.
func (DeliveryTracking) TableName() string { return "delivery_tracking" }
