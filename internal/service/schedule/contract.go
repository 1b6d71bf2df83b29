//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/visibility"
)

type Classifier interface {
	Now() time.Time
	Classify(now time.Time, order entities.Order) entities.DeadlineClass
	SortByPriority(now time.Time, orders []entities.Order)
	Location() *time.Location
}

type OrderRepository interface {
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type CourierRepository interface {
	GetAll(ctx context.Context) ([]entities.Courier, error)
}

type VisibilityPolicy interface {
	Visible(ctx context.Context, operator string, activeOrders []entities.Order, couriers []entities.Courier) (visibility.Set, visibility.Set, error)
	Toggle(ctx context.Context, operator string, key string, activeOrders []entities.Order, couriers []entities.Courier) (visibility.ToggleResult, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
