// Package database installs the schema-level enforcement that AutoMigrate
// alone does not guarantee: the foreign-key pragma and the unique indexes
// backing email, channel name, the one-referral-per-user rule and the 1:1
// order-to-tracking link. Statements are idempotent so they run safely on
// every startup, including databases migrated by older builds.
package database

import (
	"gorm.io/gorm"
)

var constraintStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users(email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_acquisition_channels_channel_name ON acquisition_channels(channel_name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_referrals_referred_user_id ON referrals(referred_user_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_delivery_tracking_order_id ON delivery_tracking(order_id)`,
}

// EnsureConstraints turns on referential integrity for the connection and
// (re)creates the unique indexes the schema depends on.
func EnsureConstraints(db *gorm.DB) error {
	if err := db.Exec(`PRAGMA foreign_keys = ON`).Error; err != nil {
		return err
	}
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
