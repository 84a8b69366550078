package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

// BookingService implements the booking lifecycle: validate a reservation
// against current room state, price the stay, and record it while flipping
// the room to Occupied in the same transaction.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// nightsBetween counts whole nights between two calendar dates. Times of
// day are discarded so a stay is always priced in whole nights.
func nightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in) / (24 * time.Hour))
}

// Create validates and records a booking.
//
// The room status check and the booking insert run inside one transaction,
// and the Available->Occupied flip is a conditional UPDATE, so two requests
// racing for the same room cannot both succeed: the loser gets
// ErrRoomUnavailable and nothing it wrote is kept.
func (s *BookingService) Create(clientID, roomID uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// Claim the room first. If another transaction already took it
		// the conditional update affects no rows and we bail out before
		// writing anything.
		if err := markOccupied(tx, roomID); err != nil {
			if errors.Is(err, ErrRoomNotOccupiable) {
				return ErrRoomUnavailable
			}
			return err
		}

		// Rate is read now and baked into the row; later price edits
		// never touch existing bookings.
		booking = models.Booking{
			ClientID: clientID,
			RoomID:   roomID,
			CheckIn:  datatypes.Date(checkIn),
			CheckOut: datatypes.Date(checkOut),
			Nights:   nights,
			Total:    room.Price * float64(nights),
			Status:   models.BookingStatusActive,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Get loads one booking with its client and room.
func (s *BookingService) Get(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Client").Preload("Room").First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetAllWithRelations returns the booking history joined with clients and
// rooms, in insertion order.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Client").
		Preload("Room").
		Order("id ASC").
		Find(&bookings).Error
	return bookings, err
}

// Checkout ends an active booking and frees its room. Only the booking
// that currently holds the room may release it: a booking that was already
// checked out is refused, so a stale checkout can never free a room a later
// booking occupies. The reservation fields stay untouched; only the
// lifecycle marker and the room's occupancy change, in one transaction.
func (s *BookingService) Checkout(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status != models.BookingStatusActive {
			return ErrBookingCheckedOut
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"checked_out_at": now,
		}).Error; err != nil {
			return err
		}

		return transitionStatus(tx, booking.RoomID,
			models.RoomStatusOccupied, models.RoomStatusAvailable, ErrRoomNotReleasable)
	})
}
