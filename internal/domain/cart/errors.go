package cart

import "errors"

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidInput    = errors.New("invalid event details")
)
