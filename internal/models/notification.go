package models

type Notification struct {
	BaseModel
	UserID       string  `gorm:"not null;index" json:"userId"`
	Message      string  `gorm:"not null" json:"message"`
	ConnectionID *string `gorm:"index" json:"connectionId"`
	Read         bool    `gorm:"default:false" json:"read"`
}
