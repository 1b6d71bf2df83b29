//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_get_test
package schedule_get

import (
	"context"
	"time"

	"bakeryops/internal/service/schedule"
	"bakeryops/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Schedule(ctx context.Context, query schedule.ScheduleQuery) (*schedule.Schedule, error)
}

type Clock interface {
	Now() time.Time
}
