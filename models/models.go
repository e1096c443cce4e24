// Package models defines the eleven tables of the food-delivery analytics
// schema as GORM entities. Column names and nullability follow the source
// schema; monetary columns are fixed-point decimal(10,2) and free-text status
// columns are closed enums.
package models

// All returns every entity in dependency order, parents before children,
// suitable for AutoMigrate.
func All() []any {
	return []any{
		&City{},
		&AcquisitionChannel{},
		&User{},
		&Restaurant{},
		&MenuItem{},
		&Order{},
		&OrderItem{},
		&DeliveryTracking{},
		&CartItem{},
		&UserSession{},
		&Referral{},
	}
}
