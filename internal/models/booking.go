package models

import "time"

type BookingStatus string

const (
	StatusHold      BookingStatus = "hold"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking spans a half-open date interval [StartDate, EndDate).
// Dates are ISO calendar dates (YYYY-MM-DD), so string comparison
// is chronological comparison.
type Booking struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Reference  string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	RoomID     uint          `gorm:"not null;index" json:"room_id"`
	CustomerID uint          `gorm:"not null" json:"customer_id"`
	StartDate  string        `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate    string        `gorm:"type:varchar(10);not null" json:"end_date"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	Price      float64       `json:"price,omitempty"`
	Currency   string        `gorm:"type:varchar(3)" json:"currency,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
