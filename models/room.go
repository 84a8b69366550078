package models

import (
	"time"

	"gorm.io/gorm"
)

// Room availability status. Maintained by the booking and release paths
// only; never set directly from a request payload.
const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Number is the business key shown on keys and invoices.
	Number string  `gorm:"column:number;uniqueIndex;size:50" json:"number"`
	Type   string  `gorm:"size:100" json:"type"`
	Price  float64 `json:"price"`
	Status string  `gorm:"size:32;default:Available" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
