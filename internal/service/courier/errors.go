package courier

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrCourierNotFound  = errors.New("courier not found")
)
