package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID           uint            `json:"menu_id" gorm:"column:menu_id;primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant      `json:"restaurant,omitempty" gorm:"belongsTo;foreignKey:RestaurantID;constraint:OnDelete:RESTRICT"`
	ItemName     string          `json:"item_name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;check:chk_menu_items_price_positive,price > 0"`
	Category     string          `json:"category"`
	CuisineType  string          `json:"cuisine_type"`
	IsVegetarian bool            `json:"is_vegetarian" gorm:"default:false"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
}
