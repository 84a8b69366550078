package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type DashboardController struct {
	Stats *services.StatsService
}

func NewDashboardController(stats *services.StatsService) *DashboardController {
	return &DashboardController{Stats: stats}
}

func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.Stats.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
