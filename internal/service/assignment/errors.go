package assignment

import (
	"errors"

	"bakeryops/internal/service/courier"
	"bakeryops/internal/service/order"
)

var (
	ErrInvalidTarget       = errors.New("invalid assignment target")
	ErrInvalidEvent        = errors.New("invalid reconciliation event")
	ErrNotEligible         = errors.New("order is not eligible for assignment")
	ErrAlreadyAssigned     = errors.New("courier already accepted")
	ErrDispatchUnavailable = errors.New("dispatch unavailable")
	ErrStaleReconciliation = errors.New("stale reconciliation")
	// откат курьера невозможен: заказ уже вне статусов назначения
	ErrRollbackConflict = errors.New("courier rollback conflict")

	ErrInvalidOrderID  = order.ErrInvalidOrderID
	ErrAttemptNotFound = order.ErrAttemptNotFound

	ErrOrderNotFound   = order.ErrOrderNotFound
	ErrCourierNotFound = courier.ErrCourierNotFound
)
