package auth

import "errors"

var (
	ErrInvalidLogin = errors.New("invalid username or password")
	ErrUserDisabled = errors.New("user is disabled")
)
