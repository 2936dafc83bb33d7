package services

import (
	"errors"

	"luxride/internal/booking"
	"luxride/internal/geo"
	"luxride/internal/repository"
)

// User-facing failures. Controllers map each to a status code and show the
// message as is.
var (
	ErrMissingField       = booking.ErrMissingField
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRatingNotSelected  = errors.New("please select a rating")
	ErrNotFound           = repository.ErrNotFound
	ErrAlreadyFavorite    = errors.New("already in favorites")
	ErrInvalidStep        = booking.ErrNotConfirming
	ErrNoVehicle          = booking.ErrNoVehicle
	ErrUnknownVehicle     = booking.ErrUnknownVehicle
	ErrBadDatetime        = booking.ErrBadDatetime
	ErrInvalidUserType    = errors.New("user type must be rider or driver")
	ErrPastDatetime       = errors.New("pickup time is in the past")
	ErrBookingClosed      = errors.New("booking can no longer be cancelled")
	ErrInvalidPlace       = errors.New("saved place must be home or work")

	ErrLocationUnavailable = geo.ErrLocationUnavailable
	ErrPermissionDenied    = geo.ErrPermissionDenied
	ErrPositionUnavailable = geo.ErrPositionUnavailable
	ErrTimeout             = geo.ErrTimeout
)
