package schedule

import "errors"

var (
	ErrOutOfRangeSlot   = errors.New("delivery hour outside schedule slots")
	ErrHiddenColumn     = errors.New("courier column is hidden")
	ErrUnschedulable    = errors.New("order has no schedule column")
	ErrInvalidSlotRange = errors.New("invalid slot range")
)
