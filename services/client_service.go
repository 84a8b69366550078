package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func (s *ClientService) Create(name, phone string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingField
	}

	client := models.Client{
		Name:  name,
		Phone: strings.TrimSpace(phone),
	}
	if err := s.DB.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := s.DB.Order("id ASC").Find(&clients).Error
	return clients, err
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}
