package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID                   uint               `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username             string             `json:"username" gorm:"not null"`
	Email                string             `json:"email" gorm:"uniqueIndex:uq_users_email;not null"`
	PasswordHash         string             `json:"-" gorm:"not null"`
	Phone                string             `json:"phone"`
	Address              string             `json:"address"`
	CityID               uint               `json:"city_id" gorm:"not null"`
	City                 City               `json:"city,omitempty" gorm:"belongsTo;foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	SignUpDate           time.Time          `json:"sign_up_date" gorm:"not null"`
	AcquisitionChannelID uint               `json:"acquisition_channel_id" gorm:"not null"`
	AcquisitionChannel   AcquisitionChannel `json:"acquisition_channel,omitempty" gorm:"foreignKey:AcquisitionChannelID;constraint:OnDelete:RESTRICT"`
	// ReferredBy mirrors the canonical Referral row for this user. It is only
	// written by the referral store, in the same transaction that creates the
	// Referral.
	ReferredBy    *uint          `json:"referred_by" gorm:"check:chk_users_no_self_referral,referred_by <> user_id"`
	Referrer      *User          `json:"-" gorm:"foreignKey:ReferredBy;constraint:OnDelete:RESTRICT"`
	LastLoginDate *time.Time     `json:"last_login_date"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	Preferences   datatypes.JSON `json:"preferences"`
}
