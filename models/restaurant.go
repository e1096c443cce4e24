package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID             uint            `json:"restaurant_id" gorm:"column:restaurant_id;primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	Address        string          `json:"address"`
	CityID         uint            `json:"city_id" gorm:"not null"`
	City           City            `json:"city,omitempty" gorm:"belongsTo;foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	Cuisine        string          `json:"cuisine"`
	Rating         decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);check:chk_restaurants_rating_range,rating >= 0 AND rating <= 5"`
	OperatingHours string          `json:"operating_hours"`
	ContactNumber  string          `json:"contact_number"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
	OpeningDate    time.Time       `json:"opening_date"`
	MenuItems      []MenuItem      `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
}
