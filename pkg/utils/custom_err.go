package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrVersionNotFound    = errors.New("version not found")
	ErrNoItinerary        = errors.New("trip has no itinerary")
	ErrImageNotFound      = errors.New("no image found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPlannerError       = errors.New("planner request failed")
	ErrBadPlannerJSON     = errors.New("planner returned invalid JSON")
	ErrDatabaseError      = errors.New("database error")
)
