package models

import "github.com/shopspring/decimal"

// OrderItem is a line of an order. ItemPrice is a snapshot of the menu price
// at order time; Subtotal always equals ItemPrice * Quantity.
type OrderItem struct {
	ID        uint            `json:"order_item_id" gorm:"column:order_item_id;primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	MenuID    uint            `json:"menu_id" gorm:"not null"`
	MenuItem  MenuItem        `json:"menu_item,omitempty" gorm:"belongsTo;foreignKey:MenuID;constraint:OnDelete:RESTRICT"`
	Quantity  int             `json:"quantity" gorm:"not null;check:chk_order_items_quantity_positive,quantity > 0"`
	ItemPrice decimal.Decimal `json:"item_price" gorm:"type:decimal(10,2);not null;check:chk_order_items_item_price_positive,item_price > 0"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
}
