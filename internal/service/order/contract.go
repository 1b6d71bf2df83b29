//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/transition"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
}

// AttemptRepository - последняя попытка назначения курьера по заказу.
type AttemptRepository interface {
	Latest(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error)
}

type TransitionEngine interface {
	Transition(order entities.Order, target entities.OrderStatusType, payload transition.Payload) (entities.Order, error)
	CanDiscard(order entities.Order) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
