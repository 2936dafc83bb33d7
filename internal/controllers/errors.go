package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"luxride/internal/services"
)

// statusOf maps a service error to the HTTP status shown to the client.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrInvalidUserType),
		errors.Is(err, services.ErrNoVehicle),
		errors.Is(err, services.ErrUnknownVehicle),
		errors.Is(err, services.ErrBadDatetime),
		errors.Is(err, services.ErrPastDatetime),
		errors.Is(err, services.ErrRatingNotSelected),
		errors.Is(err, services.ErrInvalidPlace):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrAlreadyFavorite),
		errors.Is(err, services.ErrInvalidStep),
		errors.Is(err, services.ErrBookingClosed):
		return http.StatusConflict
	case errors.Is(err, services.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": msg}. Unexpected errors are logged and
// hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("Request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
}
