package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type createRoomPayload struct {
	Number string  `json:"number" binding:"required"`
	Type   string  `json:"type" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.Rooms.Create(payload.Number, payload.Type, payload.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.ListAvailable()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ReleaseRoom frees an occupied room without touching booking history.
func (ctrl *RoomController) ReleaseRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := ctrl.Rooms.Release(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"released": true})
}
