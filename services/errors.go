package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map them onto
// HTTP statuses with errors.Is; anything else is treated as an internal
// store failure, logged with context and surfaced as a generic 500.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrDishNotFound       = errors.New("dish not found")
	ErrBasketNotFound     = errors.New("basket not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrBasketEmpty        = errors.New("basket is missing or empty")
	ErrEmailTaken         = errors.New("email address is already taken")
	ErrWeakPassword       = errors.New("password is too weak: use at least 8 characters, with letters and numbers")
	ErrNotEligible        = errors.New("dish was never ordered by this user")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
