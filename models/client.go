package models

import (
	"time"
)

// Client is a front-desk guest record. Created once, never edited or
// deleted; bookings reference it by ID.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Phone     string    `gorm:"size:64" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
