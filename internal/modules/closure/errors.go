package closure

import "errors"

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidWindow = errors.New("invalid closure window")
)
