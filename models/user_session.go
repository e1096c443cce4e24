package models

import "time"

// DeviceType is the closed set of devices a session can originate from.
type DeviceType string

const (
	DeviceMobile  DeviceType = "Mobile"
	DeviceDesktop DeviceType = "Desktop"
	DeviceTablet  DeviceType = "Tablet"
)

var AllDeviceTypes = []DeviceType{DeviceMobile, DeviceDesktop, DeviceTablet}

func (d DeviceType) Valid() bool {
	for _, v := range AllDeviceTypes {
		if d == v {
			return true
		}
	}
	return false
}

// UserSession is one app/browser visit. SessionEnd stays NULL for sessions
// that were never closed; when set it must not precede SessionStart.
type UserSession struct {
	ID           uint       `json:"session_id" gorm:"column:session_id;primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null"`
	User         User       `json:"user,omitempty" gorm:"belongsTo;foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	SessionStart time.Time  `json:"session_start" gorm:"not null"`
	SessionEnd   *time.Time `json:"session_end"`
	OrderPlaced  bool       `json:"order_placed" gorm:"default:false"`
	OrderID      *uint      `json:"order_id"`
	Order        *Order     `json:"-" gorm:"belongsTo;foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
	PagesViewed  int        `json:"pages_viewed" gorm:"check:chk_user_sessions_pages_viewed,pages_viewed >= 0"`
	DeviceType   DeviceType `json:"device_type"`
}
