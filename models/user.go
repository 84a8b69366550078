package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values stored on User and carried in the session token.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      string         `gorm:"size:64" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
