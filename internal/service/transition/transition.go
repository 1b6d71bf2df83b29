package transition

import (
	"fmt"
	"strings"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/ledger"
)

// Payload - необязательные поля, которые сливаются в заказ вместе со сменой статуса.
type Payload struct {
	Courier            *entities.CourierRef
	DeliveryAt         *time.Time
	Note               *string
	FailureReason      *string
	ConfirmOutstanding bool
}

// Engine - единственная точка изменения заказа. Заказ не мутируется, всегда возвращается новое значение.
type Engine struct {
	clock Clock
}

func New(clock Clock) *Engine {
	return &Engine{
		clock: clock,
	}
}

func (e *Engine) Transition(order entities.Order, target entities.OrderStatusType, payload Payload) (entities.Order, error) {
	if !isAllowed(order.Status, target) || !methodAllows(order.Method, order.Status, target) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s (%s)", ErrInvalidTransition, order.Status, target, order.Method)
	}

	if order.Status == entities.OrderInProduction && ledger.Outstanding(order) && !payload.ConfirmOutstanding {
		return entities.Order{}, fmt.Errorf("%w: collection %s", ErrCollectionUnconfirmed, ledger.Collection(order))
	}

	next := clone(order)
	applyCommon(&next, payload)

	switch target {
	case entities.OrderOutForDelivery:
		if payload.Courier != nil {
			next.Courier = cloneCourier(payload.Courier)
		}
		if next.Courier == nil {
			return entities.Order{}, ErrMissingCourier
		}
	case entities.OrderDeliveryFailed:
		if payload.FailureReason == nil || strings.TrimSpace(*payload.FailureReason) == "" {
			return entities.Order{}, ErrMissingFailureReason
		}
		next.FailureReason = strings.TrimSpace(*payload.FailureReason)
	case entities.OrderReadyToDeliver:
		if order.Status == entities.OrderDeliveryFailed {
			// повторная попытка: курьер назначается заново через координатор
			next.Courier = nil
			next.FailureReason = ""
		} else if payload.Courier != nil {
			next.Courier = cloneCourier(payload.Courier)
		}
	default:
		if payload.Courier != nil && AssignmentEligible(target) {
			next.Courier = cloneCourier(payload.Courier)
		}
	}

	next.Status = target
	next.UpdatedAt = e.clock.Now()
	return next, nil
}

// Amend применяет payload без смены статуса. Через него проходит оптимистичная запись курьера.
func (e *Engine) Amend(order entities.Order, payload Payload) (entities.Order, error) {
	if order.Status.IsTerminal() {
		return entities.Order{}, fmt.Errorf("%w: %s order is immutable", ErrInvalidTransition, order.Status)
	}

	if payload.Courier != nil && !AssignmentEligible(order.Status) {
		return entities.Order{}, fmt.Errorf("%w: courier cannot be changed in %s", ErrInvalidTransition, order.Status)
	}

	next := clone(order)
	applyCommon(&next, payload)

	if payload.Courier != nil {
		next.Courier = cloneCourier(payload.Courier)
	}

	if payload.FailureReason != nil {
		if order.Status != entities.OrderDeliveryFailed {
			return entities.Order{}, fmt.Errorf("%w: failure reason outside %s", ErrInvalidTransition, entities.OrderDeliveryFailed)
		}
		reason := strings.TrimSpace(*payload.FailureReason)
		if reason == "" {
			return entities.Order{}, ErrMissingFailureReason
		}
		next.FailureReason = reason
	}

	next.UpdatedAt = e.clock.Now()
	return next, nil
}

// Rollback возвращает курьера, который был до оптимистичной записи.
// Нулевой previousUpdatedAt означает, что заказ менялся после записи, и updated_at обновляется.
func (e *Engine) Rollback(order entities.Order, previousCourier *entities.CourierRef, previousUpdatedAt time.Time) (entities.Order, error) {
	if !AssignmentEligible(order.Status) {
		return entities.Order{}, fmt.Errorf("%w: cannot roll back courier in %s", ErrInvalidTransition, order.Status)
	}

	next := clone(order)
	next.Courier = cloneCourier(previousCourier)

	if previousUpdatedAt.IsZero() {
		next.UpdatedAt = e.clock.Now()
	} else {
		next.UpdatedAt = previousUpdatedAt
	}
	return next, nil
}

func (e *Engine) CanDiscard(order entities.Order) error {
	if order.Status != entities.OrderDraft {
		return fmt.Errorf("%w: only drafts can be discarded, got %s", ErrInvalidTransition, order.Status)
	}
	return nil
}

func applyCommon(order *entities.Order, payload Payload) {
	if payload.DeliveryAt != nil {
		order.DeliveryAt = *payload.DeliveryAt
	}
	if payload.Note != nil {
		order.Note = *payload.Note
	}
}

func clone(order entities.Order) entities.Order {
	next := order
	next.Courier = cloneCourier(order.Courier)

	if order.Items != nil {
		next.Items = make([]entities.OrderItem, len(order.Items))
		copy(next.Items, order.Items)
	}

	if order.Customer.Address != nil {
		address := *order.Customer.Address
		next.Customer.Address = &address
	}
	return next
}

func cloneCourier(courier *entities.CourierRef) *entities.CourierRef {
	if courier == nil {
		return nil
	}

	result := *courier
	if courier.CourierID != nil {
		id := *courier.CourierID
		result.CourierID = &id
	}
	return &result
}
