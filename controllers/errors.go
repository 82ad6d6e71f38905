package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablebook/booking-app/services"
	"github.com/tablebook/booking-app/utils"
)

// respondServiceError memetakan error domain dari services ke status HTTP.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrNoBookings):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrInvalidTable),
		errors.Is(err, services.ErrInvalidBookingDate),
		errors.Is(err, services.ErrAlreadyCanceled):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrEmailTaken):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// currentUserID mengambil user id yang di-set oleh AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := userIDInterface.(uint)
	return userID, ok
}
