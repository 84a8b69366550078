package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

// RoomService owns the room inventory and its availability state machine.
// Status only ever moves Available <-> Occupied, and each transition is a
// single conditional UPDATE so racing requests cannot both win.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Create registers a room. Status is forced to Available; callers cannot
// seed occupancy directly.
func (s *RoomService) Create(number, roomType string, price float64) (*models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrMissingField
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	room := models.Room{
		Number: number,
		Type:   strings.TrimSpace(roomType),
		Price:  price,
		Status: models.RoomStatusAvailable,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// ListAvailable is a pure filter over current status.
func (s *RoomService) ListAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("status = ?", models.RoomStatusAvailable).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// MarkOccupied flips Available -> Occupied. ErrRoomNotOccupiable when the
// room is already occupied (this is what blocks double-booking).
func (s *RoomService) MarkOccupied(roomID uint) error {
	return markOccupied(s.DB, roomID)
}

// Release flips Occupied -> Available, mirroring MarkOccupied.
func (s *RoomService) Release(roomID uint) error {
	return transitionStatus(s.DB, roomID, models.RoomStatusOccupied, models.RoomStatusAvailable, ErrRoomNotReleasable)
}

func markOccupied(tx *gorm.DB, roomID uint) error {
	return transitionStatus(tx, roomID, models.RoomStatusAvailable, models.RoomStatusOccupied, ErrRoomNotOccupiable)
}

// transitionStatus performs the check-and-update as one conditional UPDATE:
// the WHERE clause carries the expected current status, so of two
// concurrent transitions at most one can affect a row.
func transitionStatus(tx *gorm.DB, roomID uint, from, to string, conflictErr error) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		return conflictErr
	}
	return nil
}

// isDuplicateKey matches unique-index violations across the supported
// drivers (sqlite and mysql word their errors differently).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
