package profile

import "errors"

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrEmailAlreadyExists    = errors.New("email already in use")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrWrongPassword         = errors.New("current password is incorrect")
	ErrInvalidImage          = errors.New("invalid image file")
	ErrImageTooLarge         = errors.New("image file too large")
)
