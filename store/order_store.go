package store

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// PlaceOrder creates an order, its items and (optionally) its delivery
// tracking row as one atomic unit.
//
// Derived columns are filled in from OrderTime and the item lines when left
// at their zero value; a caller-supplied value that disagrees with the
// derivation is a constraint violation, never silently overwritten. Item
// prices left at zero are snapshotted from the menu.
func (s *Store) PlaceOrder(o *models.Order, items []models.OrderItem, tracking *models.DeliveryTracking) error {
	if o.OrderTime.IsZero() {
		return &validation.ConstraintError{Table: "orders", Constraint: "chk_orders_order_time_required",
			Message: "order_time must be set"}
	}
	if o.OrderStatus == "" {
		o.OrderStatus = models.OrderPlaced
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, o.UserID).Error; err != nil {
			if isNotFound(err) {
				return &validation.ConstraintError{Table: "orders", Constraint: "fk_orders_user",
					Message: "user does not exist"}
			}
			return err
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, o.RestaurantID).Error; err != nil {
			if isNotFound(err) {
				return &validation.ConstraintError{Table: "orders", Constraint: "fk_orders_restaurant",
					Message: "restaurant does not exist"}
			}
			return err
		}

		for i := range items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, items[i].MenuID).Error; err != nil {
				if isNotFound(err) {
					return &validation.ConstraintError{Table: "order_items", Constraint: "fk_order_items_menu_item",
						Message: "menu item does not exist"}
				}
				return err
			}
			if menuItem.RestaurantID != o.RestaurantID {
				return &validation.ConstraintError{Table: "order_items", Constraint: "chk_order_items_restaurant_match",
					Message: "menu item belongs to a different restaurant"}
			}
			if items[i].ItemPrice.IsZero() {
				items[i].ItemPrice = menuItem.Price
			}
			if items[i].Subtotal.IsZero() {
				items[i].Subtotal = items[i].ItemPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
			}
		}

		deriveOrderColumns(o, items)

		if err := validation.Order(o, items); err != nil {
			return err
		}

		o.Items = items
		if err := tx.Create(o).Error; err != nil {
			return translate("orders", err)
		}

		if tracking != nil {
			tracking.OrderID = o.ID
			if tracking.DeliveryStatus == "" {
				tracking.DeliveryStatus = models.DeliveryPending
			}
			if err := validation.Tracking(tracking); err != nil {
				return err
			}
			if err := tx.Create(tracking).Error; err != nil {
				return translate("delivery_tracking", err)
			}
			o.Tracking = tracking
		}
		return nil
	})
}

// deriveOrderColumns fills the stored derived columns from their sources.
func deriveOrderColumns(o *models.Order, items []models.OrderItem) {
	if o.OrderDate.IsZero() {
		y, m, d := o.OrderTime.Date()
		o.OrderDate = time.Date(y, m, d, 0, 0, 0, 0, o.OrderTime.Location())
	}
	o.OrderDay = o.OrderTime.Weekday().String()
	o.OrderHour = o.OrderTime.Hour()

	if o.TotalAmount.IsZero() {
		for i := range items {
			o.TotalAmount = o.TotalAmount.Add(items[i].Subtotal)
		}
	}
	if o.FinalAmount.IsZero() {
		o.FinalAmount = o.TotalAmount.Add(o.DeliveryFee).Sub(o.DiscountAmount)
	}
}

// DeleteOrder removes an order together with its items and tracking row.
// Cart or session rows still linked to the order block the delete.
func (s *Store) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if isNotFound(err) {
				return notFound("order", id)
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.DeliveryTracking{}).Error; err != nil {
			return translate("delivery_tracking", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return translate("order_items", err)
		}
		return translate("orders", tx.Delete(&order).Error)
	})
}

// UpdateOrderStatus sets the order status to any valid enum value. Status
// ordering is deliberately not enforced here; callers wanting an ordered
// lifecycle consult the statemachine package first.
func (s *Store) UpdateOrderStatus(id uint, status models.OrderStatus) error {
	if !status.Valid() {
		return &validation.ConstraintError{Table: "orders", Constraint: "chk_orders_status_enum",
			Message: "unknown order_status " + string(status)}
	}
	res := s.db.Model(&models.Order{}).Where("order_id = ?", id).Update("order_status", status)
	if res.Error != nil {
		return translate("orders", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("order", id)
	}
	return nil
}

// GetOrder loads an order with its items and tracking row.
func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Tracking").First(&order, id).Error; err != nil {
		if isNotFound(err) {
			return nil, notFound("order", id)
		}
		return nil, err
	}
	return &order, nil
}
