package store

import (
	"gorm.io/gorm"

	"food-delivery-analytics/models"
	"food-delivery-analytics/validation"
)

// CreateReferral records who referred whom. The Referral table is the
// canonical source; users.referred_by is updated in the same transaction so
// the two can never diverge. A user can be referred at most once.
func (s *Store) CreateReferral(r *models.Referral) error {
	if r.RewardStatus == "" {
		r.RewardStatus = models.RewardPending
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var referrer models.User
		if err := tx.First(&referrer, r.ReferrerUserID).Error; err != nil {
			if isNotFound(err) {
				return &validation.ConstraintError{Table: "referrals", Constraint: "fk_referrals_referrer_user",
					Message: "referrer does not exist"}
			}
			return err
		}
		var referred models.User
		if err := tx.First(&referred, r.ReferredUserID).Error; err != nil {
			if isNotFound(err) {
				return &validation.ConstraintError{Table: "referrals", Constraint: "fk_referrals_referred_user",
					Message: "referred user does not exist"}
			}
			return err
		}
		if r.ReferralDate.IsZero() {
			r.ReferralDate = referred.SignUpDate
		}
		if err := validation.Referral(r); err != nil {
			return err
		}
		if err := tx.Create(r).Error; err != nil {
			return translate("referrals", err)
		}
		err := tx.Model(&models.User{}).Where("user_id = ?", r.ReferredUserID).
			Update("referred_by", r.ReferrerUserID).Error
		return translate("users", err)
	})
}

// UpdateRewardStatus moves a referral reward through its payout states.
func (s *Store) UpdateRewardStatus(referralID uint, status models.RewardStatus) error {
	if !status.Valid() {
		return &validation.ConstraintError{Table: "referrals", Constraint: "chk_referrals_reward_status_enum",
			Message: "unknown reward_status " + string(status)}
	}
	res := s.db.Model(&models.Referral{}).Where("referral_id = ?", referralID).Update("reward_status", status)
	if res.Error != nil {
		return translate("referrals", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("referral", referralID)
	}
	return nil
}
