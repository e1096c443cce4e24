package models

// AcquisitionChannel is a root dimension describing how a user was acquired
// (organic search, referral program, ads and so on).
type AcquisitionChannel struct {
	ID          uint   `json:"channel_id" gorm:"column:channel_id;primaryKey"`
	ChannelName string `json:"channel_name" gorm:"uniqueIndex:uq_acquisition_channels_channel_name;not null"`
	Description string `json:"description"`
}
