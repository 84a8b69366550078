package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking lifecycle. A booking is Active from creation until checkout;
// only an Active booking holds its room's occupancy.
const (
	BookingStatusActive     = "Active"
	BookingStatusCheckedOut = "Checked-Out"
)

// Booking ties one client to one room for a span of nights. The reservation
// itself is immutable after creation: Total is computed from the room's
// price at booking time and is never recomputed, so later rate edits cannot
// affect past stays. Only the lifecycle fields (Status, CheckedOutAt) move.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index;column:client_id" json:"client_id"`
	RoomID   uint `gorm:"index;column:room_id" json:"room_id"`

	CheckIn  datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out" json:"check_out"`
	Nights   int            `gorm:"column:nights" json:"nights"`
	Total    float64        `gorm:"column:total" json:"total"`

	Status       string     `gorm:"column:status;size:32;default:Active" json:"status"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
