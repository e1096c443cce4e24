package models

import "time"

// CartItem records an item placed in a cart. Abandoned carts keep
// IsOrdered=false forever; converted carts link to the resulting order.
type CartItem struct {
	ID           uint       `json:"cart_id" gorm:"column:cart_id;primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null"`
	User         User       `json:"user,omitempty" gorm:"belongsTo;foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"belongsTo;foreignKey:RestaurantID;constraint:OnDelete:RESTRICT"`
	MenuID       uint       `json:"menu_id" gorm:"not null"`
	MenuItem     MenuItem   `json:"menu_item,omitempty" gorm:"belongsTo;foreignKey:MenuID;constraint:OnDelete:RESTRICT"`
	Quantity     int        `json:"quantity" gorm:"not null;check:chk_cart_items_quantity_positive,quantity > 0"`
	AddedAt      time.Time  `json:"added_at" gorm:"not null"`
	IsOrdered    bool       `json:"is_ordered" gorm:"default:false"`
	OrderID      *uint      `json:"order_id"`
	Order        *Order     `json:"-" gorm:"belongsTo;foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}
