package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type ClientController struct {
	Clients *services.ClientService
}

func NewClientController(clients *services.ClientService) *ClientController {
	return &ClientController{Clients: clients}
}

type createClientPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var payload createClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	client, err := ctrl.Clients.Create(payload.Name, payload.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, client)
}

func (ctrl *ClientController) GetClients(c *gin.Context) {
	clients, err := ctrl.Clients.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, clients)
}
