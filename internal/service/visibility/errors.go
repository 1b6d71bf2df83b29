package visibility

import "errors"

var (
	ErrUnknownCourierKey = errors.New("unknown courier key")
	ErrInvalidOperator   = errors.New("invalid operator")
)
