package services

import (
	"database/sql"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

// DashboardStats is the front-desk overview: room occupancy counts and
// lifetime booking revenue.
type DashboardStats struct {
	TotalRooms     int64   `json:"total_rooms"`
	OccupiedRooms  int64   `json:"occupied_rooms"`
	AvailableRooms int64   `json:"available_rooms"`
	TotalBookings  int64   `json:"total_bookings"`
	Revenue        float64 `json:"revenue"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomStatusOccupied).
		Count(&stats.OccupiedRooms).Error; err != nil {
		return nil, err
	}
	stats.AvailableRooms = stats.TotalRooms - stats.OccupiedRooms

	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	var revenue sql.NullFloat64
	if err := s.DB.Model(&models.Booking{}).
		Select("SUM(total)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		stats.Revenue = revenue.Float64
	}

	return &stats, nil
}
