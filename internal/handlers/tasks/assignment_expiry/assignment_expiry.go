package assignment_expiry

import (
	"context"
	"time"

	"bakeryops/pkg/logger"
)

type Service interface {
	ExpirePending(ctx context.Context) (int64, error)
}

// AssignmentExpiry переводит попытки назначения без ответа канала в timed_out.
type AssignmentExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentExpiry(log logger.Logger, service Service, interval time.Duration) *AssignmentExpiry {
	return &AssignmentExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentExpiry) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	expired, err := a.service.ExpirePending(ctxWithTimeout)

	if expired > 0 {
		a.log.With(
			logger.NewField("expired_attempts", expired),
		).Info("assignment expiry")
	}

	return err
}

func (a *AssignmentExpiry) Info() string {
	return "assignment expiry"
}
