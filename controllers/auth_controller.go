package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hoteldesk-backend/middleware"
	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	token, user, err := ctrl.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("failed login attempt")
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Me returns the principal of the current session.
func (ctrl *AuthController) Me(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, principal)
}
