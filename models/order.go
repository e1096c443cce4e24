package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a food delivery order.
// The source data kept these as free text; they are a closed enum here.
type OrderStatus string

const (
	OrderPlaced     OrderStatus = "Placed"
	OrderConfirmed  OrderStatus = "Confirmed"
	OrderPreparing  OrderStatus = "Preparing"
	OrderDispatched OrderStatus = "Dispatched"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// AllOrderStatuses lists every valid OrderStatus value.
var AllOrderStatuses = []OrderStatus{
	OrderPlaced, OrderConfirmed, OrderPreparing,
	OrderDispatched, OrderDelivered, OrderCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentMethod is the closed set of accepted payment instruments.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentDebitCard      PaymentMethod = "Debit Card"
	PaymentUPI            PaymentMethod = "UPI"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentWallet         PaymentMethod = "Wallet"
)

var AllPaymentMethods = []PaymentMethod{
	PaymentCreditCard, PaymentDebitCard, PaymentUPI,
	PaymentCashOnDelivery, PaymentWallet,
}

func (m PaymentMethod) Valid() bool {
	for _, v := range AllPaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Order is the central fact table. OrderDate, OrderDay, OrderHour and
// FinalAmount are stored but always derived from OrderTime and the money
// columns at write time; a caller-supplied value that disagrees with the
// derivation is rejected.
type Order struct {
	ID              uint              `json:"order_id" gorm:"column:order_id;primaryKey"`
	UserID          uint              `json:"user_id" gorm:"not null"`
	User            User              `json:"user,omitempty" gorm:"belongsTo;foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	RestaurantID    uint              `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant        `json:"restaurant,omitempty" gorm:"belongsTo;foreignKey:RestaurantID;constraint:OnDelete:RESTRICT"`
	OrderTime       time.Time         `json:"order_time" gorm:"not null"`
	OrderDate       time.Time         `json:"order_date" gorm:"not null"`
	OrderDay        string            `json:"order_day" gorm:"not null"`
	OrderHour       int               `json:"order_hour" gorm:"check:chk_orders_order_hour,order_hour >= 0 AND order_hour <= 23"`
	TotalAmount     decimal.Decimal   `json:"total_amount" gorm:"type:decimal(10,2);check:chk_orders_total_amount,total_amount >= 0"`
	DeliveryFee     decimal.Decimal   `json:"delivery_fee" gorm:"type:decimal(10,2);check:chk_orders_delivery_fee,delivery_fee >= 0"`
	DiscountAmount  decimal.Decimal   `json:"discount_amount" gorm:"type:decimal(10,2);check:chk_orders_discount_amount,discount_amount >= 0"`
	FinalAmount     decimal.Decimal   `json:"final_amount" gorm:"type:decimal(10,2);check:chk_orders_final_amount,final_amount >= 0"`
	OrderStatus     OrderStatus       `json:"order_status" gorm:"not null;default:'Placed'"`
	DeliveryAddress string            `json:"delivery_address"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	Items           []OrderItem       `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Tracking        *DeliveryTracking `json:"tracking,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
