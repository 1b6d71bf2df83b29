package order

import (
	"errors"
	"fmt"

	"bakeryops/internal/service/transition"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidOrder          = errors.New("invalid order")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("order already exists")

	ErrAttemptNotFound = errors.New("assignment attempt not found")
	// заказ не может покинуть статусы назначения, пока курьер не ответил
	ErrAssignmentPending = fmt.Errorf("%w: courier assignment pending", transition.ErrInvalidTransition)
)
