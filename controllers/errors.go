package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

// statusForError maps service errors onto HTTP statuses: validation 400,
// not found 404, conflict 409, bad credentials 401.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrRoomNotOccupiable),
		errors.Is(err, services.ErrRoomNotReleasable),
		errors.Is(err, services.ErrBookingCheckedOut),
		errors.Is(err, services.ErrDuplicateRoomNumber),
		errors.Is(err, services.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	utils.JSONError(c, status, message)
}
