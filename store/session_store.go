package store

import (
	"time"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// StartSession opens a session for a user. SessionEnd stays NULL until the
// session is closed.
func (s *Store) StartSession(sess *models.UserSession) error {
	if sess.SessionStart.IsZero() {
		sess.SessionStart = time.Now()
	}
	if err := validation.Session(sess); err != nil {
		return err
	}
	var user models.User
	if err := s.db.First(&user, sess.UserID).Error; err != nil {
		if isNotFound(err) {
			return &validation.ConstraintError{Table: "user_sessions", Constraint: "fk_user_sessions_user",
				Message: "user does not exist"}
		}
		return err
	}
	return translate("user_sessions", s.db.Create(sess).Error)
}

// EndSession closes a session, optionally linking the order placed during
// it. The end time must not precede the start.
func (s *Store) EndSession(sessionID uint, end time.Time, orderID *uint) error {
	var sess models.UserSession
	if err := s.db.First(&sess, sessionID).Error; err != nil {
		if isNotFound(err) {
			return notFound("session", sessionID)
		}
		return err
	}
	if orderID != nil {
		var order models.Order
		if err := s.db.First(&order, *orderID).Error; err != nil {
			if isNotFound(err) {
				return &validation.ConstraintError{Table: "user_sessions", Constraint: "fk_user_sessions_order",
					Message: "order does not exist"}
			}
			return err
		}
		if order.UserID != sess.UserID {
			return &validation.ConstraintError{Table: "user_sessions", Constraint: "chk_user_sessions_order_user_match",
				Message: "order belongs to a different user"}
		}
	}
	sess.SessionEnd = &end
	sess.OrderID = orderID
	sess.OrderPlaced = orderID != nil
	if err := validation.Session(&sess); err != nil {
		return err
	}
	return translate("user_sessions", s.db.Save(&sess).Error)
}
