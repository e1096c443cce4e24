package store

import (
	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// CreateCity inserts a city dimension row.
func (s *Store) CreateCity(c *models.City) error {
	if err := validation.City(c); err != nil {
		return err
	}
	return translate("cities", s.db.Create(c).Error)
}

// CreateAcquisitionChannel inserts an acquisition-channel dimension row.
func (s *Store) CreateAcquisitionChannel(c *models.AcquisitionChannel) error {
	if err := validation.Channel(c); err != nil {
		return err
	}
	return translate("acquisition_channels", s.db.Create(c).Error)
}

// DeleteCity removes a city. The delete is rejected while any user or
// restaurant still references it.
func (s *Store) DeleteCity(id uint) error {
	var city models.City
	if err := s.db.First(&city, id).Error; err != nil {
		if isNotFound(err) {
			return notFound("city", id)
		}
		return err
	}
	var users, restaurants int64
	s.db.Model(&models.User{}).Where("city_id = ?", id).Count(&users)
	s.db.Model(&models.Restaurant{}).Where("city_id = ?", id).Count(&restaurants)
	if users > 0 {
		return &validation.ConstraintError{Table: "users", Constraint: "fk_users_city",
			Message: "city is still referenced by users"}
	}
	if restaurants > 0 {
		return &validation.ConstraintError{Table: "restaurants", Constraint: "fk_restaurants_city",
			Message: "city is still referenced by restaurants"}
	}
	return translate("cities", s.db.Delete(&city).Error)
}

// DeleteAcquisitionChannel removes a channel unless users still reference it.
func (s *Store) DeleteAcquisitionChannel(id uint) error {
	var channel models.AcquisitionChannel
	if err := s.db.First(&channel, id).Error; err != nil {
		if isNotFound(err) {
			return notFound("acquisition channel", id)
		}
		return err
	}
	var users int64
	s.db.Model(&models.User{}).Where("acquisition_channel_id = ?", id).Count(&users)
	if users > 0 {
		return &validation.ConstraintError{Table: "users", Constraint: "fk_users_acquisition_channel",
			Message: "channel is still referenced by users"}
	}
	return translate("acquisition_channels", s.db.Delete(&channel).Error)
}
