package models

import "time"

type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	RoomNumber string    `gorm:"type:varchar(20);not null" json:"room_number"`
	RoomType   string    `gorm:"type:varchar(50);not null" json:"room_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
