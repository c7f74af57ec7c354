package repository

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrFavoriteNotFound    = errors.New("favorite not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrResetTokenNotFound  = errors.New("reset token not found")
	ErrResetTokenExpired   = errors.New("reset token expired")
)
