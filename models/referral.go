package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RewardStatus tracks payout of a referral reward.
type RewardStatus string

const (
	RewardPending RewardStatus = "Pending"
	RewardPaid    RewardStatus = "Paid"
	RewardExpired RewardStatus = "Expired"
)

var AllRewardStatuses = []RewardStatus{RewardPending, RewardPaid, RewardExpired}

func (s RewardStatus) Valid() bool {
	for _, v := range AllRewardStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Referral is the canonical record of who referred whom. A user can be
// referred at most once, and never by themselves. users.referred_by is a
// derived mirror of this table.
type Referral struct {
	ID             uint            `json:"referral_id" gorm:"column:referral_id;primaryKey"`
	ReferrerUserID uint            `json:"referrer_user_id" gorm:"not null;check:chk_referrals_no_self_referral,referrer_user_id <> referred_user_id"`
	ReferrerUser   User            `json:"referrer_user,omitempty" gorm:"foreignKey:ReferrerUserID;constraint:OnDelete:RESTRICT"`
	ReferredUserID uint            `json:"referred_user_id" gorm:"uniqueIndex:uq_referrals_referred_user_id;not null"`
	ReferredUser   User            `json:"referred_user,omitempty" gorm:"foreignKey:ReferredUserID;constraint:OnDelete:RESTRICT"`
	ReferralDate   time.Time       `json:"referral_date" gorm:"not null"`
	RewardAmount   decimal.Decimal `json:"reward_amount" gorm:"type:decimal(10,2);check:chk_referrals_reward_amount,reward_amount >= 0"`
	RewardStatus   RewardStatus    `json:"reward_status" gorm:"not null;default:'Pending'"`
}
