package models

// City is a root dimension: it references nothing and is referenced by
// users and restaurants. Deleting a city is rejected while dependents exist.
type City struct {
	ID       uint   `json:"city_id" gorm:"column:city_id;primaryKey"`
	CityName string `json:"city_name" gorm:"not null"`
	State    string `json:"state" gorm:"not null"`
}
