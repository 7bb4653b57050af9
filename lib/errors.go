package lib

import "errors"

// Store errors
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// Checkout errors
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMissingFields = errors.New("missing customer fields")
	ErrInvalidStatus = errors.New("invalid order status")
)
