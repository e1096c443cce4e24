package store

import (
	"time"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// CreateUser hashes the password and inserts the user after checking the
// city and acquisition-channel parents exist.
func (s *Store) CreateUser(u *models.User, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if u.SignUpDate.IsZero() {
		u.SignUpDate = time.Now()
	}
	if err := validation.User(u); err != nil {
		return err
	}
	var city models.City
	if err := s.db.First(&city, u.CityID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "users", Constraint: "fk_users_city",
				Message: "city does not exist"}
		}
		return err
	}
	var channel models.AcquisitionChannel
	if err := s.db.First(&channel, u.AcquisitionChannelID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "users", Constraint: "fk_users_acquisition_channel",
				Message: "acquisition channel does not exist"}
		}
		return err
	}
	return translate("users", s.db.Create(u).Error)
}

// TouchLastLogin records a login timestamp for the user.
func (s *Store) TouchLastLogin(userID uint, at time.Time) error {
	res := s.db.Model(&models.User{}).Where("user_id = ?", userID).Update("last_login_date", at)
	if res.Error != nil {
		return translate("users", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("user", userID)
	}
	return nil
}

// SetUserActive flips the is_active flag.
func (s *Store) SetUserActive(userID uint, active bool) error {
	res := s.db.Model(&models.User{}).Where("user_id = ?", userID).Update("is_active", active)
	if res.Error != nil {
		return translate("users", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("user", userID)
	}
	return nil
}

// DeleteUser removes a user; the database rejects it while orders, carts,
// sessions or referrals still reference the row.
func (s *Store) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return notFound("user", id)
		}
		return err
	}
	return translate("users", s.db.Delete(&user).Error)
}
