//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/transition"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt entities.AssignmentAttempt) (*entities.AssignmentAttempt, error)
	Latest(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error)
	Update(ctx context.Context, attemptModify entities.AssignmentAttemptModify) (*entities.AssignmentAttempt, error)
	ListExpired(ctx context.Context, now time.Time, limit uint64) ([]entities.AssignmentAttempt, error)
}

type CourierRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
}

type DispatchChannel interface {
	SendAssignmentRequest(ctx context.Context, request entities.AssignmentRequest) (*entities.DispatchAck, error)
}

type TransitionEngine interface {
	Amend(order entities.Order, payload transition.Payload) (entities.Order, error)
	Rollback(order entities.Order, previousCourier *entities.CourierRef, previousUpdatedAt time.Time) (entities.Order, error)
}

type DeadlineFactory interface {
	CalculateDeadline(target entities.AssignmentTarget, baseTime time.Time) time.Time
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
