package store

import (
	"time"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// AddCartItem records an item added to a cart. New cart rows are never
// born converted: IsOrdered and the order link start cleared.
func (s *Store) AddCartItem(c *models.CartItem) error {
	if c.AddedAt.IsZero() {
		c.AddedAt = time.Now()
	}
	c.IsOrdered = false
	c.OrderID = nil
	if err := validation.CartItem(c); err != nil {
		return err
	}
	var user models.User
	if err := s.db.First(&user, c.UserID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "cart_items", Constraint: "fk_cart_items_user",
				Message: "user does not exist"}
		}
		return err
	}
	var menuItem models.MenuItem
	if err := s.db.First(&menuItem, c.MenuID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "cart_items", Constraint: "fk_cart_items_menu_item",
				Message: "menu item does not exist"}
		}
		return err
	}
	if menuItem.RestaurantID != c.RestaurantID {
		return &validation.ConstraintError{Table: "cart_items", Constraint: "chk_cart_items_restaurant_match",
			Message: "menu item belongs to a different restaurant"}
	}
	return translate("cart_items", s.db.Create(c).Error)
}

// MarkCartItemOrdered converts a cart row once its order has been placed.
func (s *Store) MarkCartItemOrdered(cartID, orderID uint) error {
	var cart models.CartItem
	if err := s.db.First(&cart, cartID).Error; err != nil {
		if isNotFound(err) {
			return notFound("cart item", cartID)
		}
		return err
	}
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "cart_items", Constraint: "fk_cart_items_order",
				Message: "order does not exist"}
		}
		return err
	}
	if order.UserID != cart.UserID {
		return &validation.ConstraintError{Table: "cart_items", Constraint: "chk_cart_items_order_user_match",
			Message: "order belongs to a different user"}
	}
	updates := map[string]any{"is_ordered": true, "order_id": orderID}
	return translate("cart_items", s.db.Model(&cart).Updates(updates).Error)
}
