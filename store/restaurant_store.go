package store

import (
	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// CreateRestaurant inserts a restaurant after checking its city exists.
func (s *Store) CreateRestaurant(r *models.Restaurant) error {
	if err := validation.Restaurant(r); err != nil {
		return err
	}
	var city models.City
	if err := s.db.First(&city, r.CityID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "restaurants", Constraint: "fk_restaurants_city",
				Message: "city does not exist"}
		}
		return err
	}
	return translate("restaurants", s.db.Create(r).Error)
}

// CreateMenuItem inserts a menu item for an existing restaurant.
func (s *Store) CreateMenuItem(m *models.MenuItem) error {
	if err := validation.MenuItem(m); err != nil {
		return err
	}
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, m.RestaurantID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "menu_items", Constraint: "fk_menu_items_restaurant",
				Message: "restaurant does not exist"}
		}
		return err
	}
	if m.CuisineType == "" {
		m.CuisineType = restaurant.Cuisine
	}
	return translate("menu_items", s.db.Create(m).Error)
}

// DeleteRestaurant removes a restaurant; the database rejects it while menu
// items, orders or carts still reference the row.
func (s *Store) DeleteRestaurant(id uint) error {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		if isNotFound(err) {
			return notFound("restaurant", id)
		}
		return err
	}
	return translate("restaurants", s.db.Delete(&restaurant).Error)
}

// DeleteMenuItem removes a menu item; order and cart lines block the delete.
func (s *Store) DeleteMenuItem(id uint) error {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if isNotFound(err) {
			return notFound("menu item", id)
		}
		return err
	}
	return translate("menu_items", s.db.Delete(&item).Error)
}

// SetMenuItemAvailability flips the is_available flag.
func (s *Store) SetMenuItemAvailability(menuID uint, available bool) error {
	res := s.db.Model(&models.MenuItem{}).Where("menu_id = ?", menuID).Update("is_available", available)
	if res.Error != nil {
		return translate("menu_items", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("menu item", menuID)
	}
	return nil
}

// SetRestaurantActive flips the is_active flag.
func (s *Store) SetRestaurantActive(restaurantID uint, active bool) error {
	res := s.db.Model(&models.Restaurant{}).Where("restaurant_id = ?", restaurantID).Update("is_active", active)
	if res.Error != nil {
		return translate("restaurants", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("restaurant", restaurantID)
	}
	return nil
}
