//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assignment_get_test
package order_assignment_get

import (
	"context"

	"bakeryops/internal/entities"
	"bakeryops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Pending(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error)
}
