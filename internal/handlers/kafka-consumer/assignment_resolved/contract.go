//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_resolved_test
package assignment_resolved

import (
	"context"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/assignment"
	"bakeryops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Reconcile(ctx context.Context, event entities.ReconciliationEvent) (*assignment.ReconcileResult, error)
}
