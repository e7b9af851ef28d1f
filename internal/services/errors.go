package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrEmptyAddress       = errors.New("shipping address is required")
)
