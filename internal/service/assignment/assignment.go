package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/ledger"
	"bakeryops/internal/service/transition"
	"github.com/google/uuid"
)

const defaultExpireBatch = 100

type Coordinator struct {
	orders      OrderRepository
	attempts    AttemptRepository
	couriers    CourierRepository
	dispatch    DispatchChannel
	engine      TransitionEngine
	deadlines   DeadlineFactory
	clock       Clock
	txManager   TxManager
	expireBatch uint64
}

func New(
	orders OrderRepository,
	attempts AttemptRepository,
	couriers CourierRepository,
	dispatch DispatchChannel,
	engine TransitionEngine,
	deadlines DeadlineFactory,
	clock Clock,
	txManager TxManager,
) *Coordinator {
	return &Coordinator{
		orders:      orders,
		attempts:    attempts,
		couriers:    couriers,
		dispatch:    dispatch,
		engine:      engine,
		deadlines:   deadlines,
		clock:       clock,
		txManager:   txManager,
		expireBatch: defaultExpireBatch,
	}
}

type AssignResult struct {
	Attempt    entities.AssignmentAttempt
	Order      entities.Order
	Optimistic bool
}

type ReconcileResult struct {
	Attempt   entities.AssignmentAttempt
	Duplicate bool
}

// Assign выдает новый токен, отправляет запрос в канал и, если канал его принял,
// оптимистично записывает курьера. Незавершенная попытка для того же заказа вытесняется.
func (c *Coordinator) Assign(ctx context.Context, orderID string, target entities.AssignmentTarget) (*AssignResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if !target.IsValid() {
		return nil, ErrInvalidTarget
	}

	var (
		attempt *entities.AssignmentAttempt
		request entities.AssignmentRequest
	)

	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := checkEligible(*current); err != nil {
			return err
		}

		latest, err := c.latest(ctx, orderID)
		if err != nil {
			return err
		}

		pending := latest != nil && latest.State.IsPending()
		if !pending && assigned(current.Courier) {
			return ErrAlreadyAssigned
		}

		var courier *entities.Courier
		if target.CourierID != nil {
			courier, err = c.couriers.GetByID(ctx, *target.CourierID)
			if err != nil {
				return fmt.Errorf("get courier: %w", err)
			}
		}

		now := c.clock.Now()
		if pending {
			current, err = c.supersede(ctx, *current, *latest, now)
			if err != nil {
				return err
			}
		}

		attempt, err = c.attempts.Create(ctx, entities.AssignmentAttempt{
			OrderID:           orderID,
			Target:            target,
			State:             entities.AssignmentRequesting,
			PreviousCourier:   current.Courier,
			PreviousUpdatedAt: current.UpdatedAt,
			Deadline:          c.deadlines.CalculateDeadline(target, now),
			CreatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create assignment attempt: %w", err)
		}

		request = buildRequest(*current, *attempt, courier)
		return nil
	})
	if err != nil {
		AssignmentAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	ack, err := c.dispatch.SendAssignmentRequest(ctx, request)
	if err != nil || ack == nil || !ack.Accepted {
		reason := dispatchFailureReason(ack, err)
		AssignmentAttemptsTotal.WithLabelValues("dispatch_failed").Inc()

		// отметить попытку нужно даже при отмененном запросе
		if markErr := c.markDispatchFailed(context.WithoutCancel(ctx), *attempt, reason); markErr != nil {
			return nil, fmt.Errorf("%w: %s (mark attempt: %w)", ErrDispatchUnavailable, reason, markErr)
		}
		return nil, fmt.Errorf("%w: %s", ErrDispatchUnavailable, reason)
	}

	result, err := c.applyOptimistic(ctx, *attempt, request.CourierPhone)
	if err != nil {
		return nil, err
	}

	switch {
	case result.Optimistic:
		AssignmentAttemptsTotal.WithLabelValues("optimistic").Inc()
	case result.Attempt.State.IsPending():
		AssignmentAttemptsTotal.WithLabelValues("pending").Inc()
	default:
		AssignmentAttemptsTotal.WithLabelValues("superseded").Inc()
	}
	return result, nil
}

// Reconcile применяет accept/reject. Событие с чужим токеном отбрасывается,
// повтор события для уже разрешенной попытки ничего не меняет.
func (c *Coordinator) Reconcile(ctx context.Context, event entities.ReconciliationEvent) (*ReconcileResult, error) {
	if strings.TrimSpace(event.OrderID) == "" || event.Token <= 0 {
		return nil, fmt.Errorf("%w: order %q token %d", ErrInvalidEvent, event.OrderID, event.Token)
	}
	if event.Outcome != entities.OutcomeAccept && event.Outcome != entities.OutcomeReject {
		return nil, fmt.Errorf("%w: outcome %q", ErrInvalidEvent, event.Outcome)
	}

	result := &ReconcileResult{}
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		latest, err := c.latest(ctx, event.OrderID)
		if err != nil {
			return err
		}

		if latest == nil || latest.Token != event.Token {
			return fmt.Errorf("%w: order %s token %d", ErrStaleReconciliation, event.OrderID, event.Token)
		}

		if !latest.State.IsPending() {
			result.Attempt = *latest
			result.Duplicate = true
			return nil
		}

		var resolved *entities.AssignmentAttempt
		if event.Outcome == entities.OutcomeAccept {
			resolved, err = c.accept(ctx, *latest, event.CourierPhone)
		} else {
			resolved, err = c.resolveWithRollback(ctx, *latest, entities.AssignmentRejected, "")
		}
		if err != nil {
			return err
		}

		result.Attempt = *resolved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Duplicate {
		AssignmentResolutionsTotal.WithLabelValues(result.Attempt.State.String()).Inc()
	}
	return result, nil
}

// ExpirePending переводит просроченные попытки в timed_out и возвращает заказ в unassigned.
func (c *Coordinator) ExpirePending(ctx context.Context) (int64, error) {
	expired, err := c.attempts.ListExpired(ctx, c.clock.Now(), c.expireBatch)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire pending timed out: %w", err)
		}
		return 0, fmt.Errorf("list expired attempts: %w", err)
	}

	var (
		count     int64
		conflicts []error
	)
	for _, attempt := range expired {
		expiredNow := false
		err := c.txManager.Do(ctx, func(ctx context.Context) error {
			latest, err := c.latest(ctx, attempt.OrderID)
			if err != nil {
				return err
			}

			// за время выборки попытку могли вытеснить или разрешить
			if latest == nil || latest.Token != attempt.Token || !latest.State.IsPending() {
				return nil
			}

			if _, err := c.resolveWithRollback(ctx, *latest, entities.AssignmentTimedOut, entities.ReasonDispatchUnavailable); err != nil {
				return err
			}
			expiredNow = true
			return nil
		})
		if err != nil {
			// конфликт отката одной попытки не должен стопорить остальные
			if errors.Is(err, ErrRollbackConflict) {
				conflicts = append(conflicts, fmt.Errorf("expire attempt %d: %w", attempt.Token, err))
				continue
			}
			return count, errors.Join(append(conflicts, fmt.Errorf("expire attempt %d: %w", attempt.Token, err))...)
		}

		if expiredNow {
			count++
			AssignmentResolutionsTotal.WithLabelValues(entities.AssignmentTimedOut.String()).Inc()
		}
	}
	return count, errors.Join(conflicts...)
}

// Pending возвращает последнюю попытку назначения. nil - назначений еще не было.
func (c *Coordinator) Pending(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	latest, err := c.latest(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return latest, nil
}

func (c *Coordinator) applyOptimistic(ctx context.Context, attempt entities.AssignmentAttempt, phone string) (*AssignResult, error) {
	result := &AssignResult{Attempt: attempt}

	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		latest, err := c.latest(ctx, attempt.OrderID)
		if err != nil {
			return err
		}

		current, err := c.orders.GetByID(ctx, attempt.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		result.Order = *current

		// пока шел запрос, попытку вытеснили или уже разрешили
		if latest == nil || latest.Token != attempt.Token || !latest.State.IsPending() {
			if latest != nil {
				result.Attempt = *latest
			}
			return nil
		}
		result.Attempt = *latest

		// без телефона ждем подтверждения, заказ остается в unassigned
		if phone == "" && !attempt.Target.External {
			return nil
		}

		next, err := c.engine.Amend(*current, transition.Payload{Courier: courierRef(attempt.Target, phone)})
		if err != nil {
			if errors.Is(err, transition.ErrInvalidTransition) {
				return nil
			}
			return fmt.Errorf("optimistic courier write: %w", err)
		}

		updated, err := c.orders.Update(ctx, courierModify(next))
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		optimistic := true
		appliedAt := updated.UpdatedAt
		updatedAttempt, err := c.attempts.Update(ctx, entities.AssignmentAttemptModify{
			Token:      &attempt.Token,
			Optimistic: &optimistic,
			AppliedAt:  &appliedAt,
		})
		if err != nil {
			return fmt.Errorf("update assignment attempt: %w", err)
		}

		result.Attempt = *updatedAttempt
		result.Order = *updated
		result.Optimistic = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Coordinator) accept(ctx context.Context, attempt entities.AssignmentAttempt, phone string) (*entities.AssignmentAttempt, error) {
	if !attempt.Optimistic {
		if err := c.applyAcceptedCourier(ctx, attempt, phone); err != nil {
			return nil, err
		}
	}

	return c.resolve(ctx, attempt, entities.AssignmentAccepted, "")
}

// applyAcceptedCourier записывает курьера, если оптимистичная запись была пропущена.
func (c *Coordinator) applyAcceptedCourier(ctx context.Context, attempt entities.AssignmentAttempt, phone string) error {
	if phone == "" && attempt.Target.CourierID != nil {
		courier, err := c.couriers.GetByID(ctx, *attempt.Target.CourierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		phone = courier.Phone
	}

	if phone == "" && !attempt.Target.External {
		return nil
	}

	current, err := c.orders.GetByID(ctx, attempt.OrderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	next, err := c.engine.Amend(*current, transition.Payload{Courier: courierRef(attempt.Target, phone)})
	if err != nil {
		if errors.Is(err, transition.ErrInvalidTransition) {
			return nil
		}
		return fmt.Errorf("accepted courier write: %w", err)
	}

	if _, err := c.orders.Update(ctx, courierModify(next)); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (c *Coordinator) resolveWithRollback(ctx context.Context, attempt entities.AssignmentAttempt, state entities.AssignmentState, reason string) (*entities.AssignmentAttempt, error) {
	if attempt.Optimistic {
		current, err := c.orders.GetByID(ctx, attempt.OrderID)
		if err != nil {
			return nil, fmt.Errorf("get order: %w", err)
		}

		if err := c.rollbackOrder(ctx, *current, attempt); err != nil {
			return nil, err
		}
	}

	return c.resolve(ctx, attempt, state, reason)
}

func (c *Coordinator) rollbackOrder(ctx context.Context, current entities.Order, attempt entities.AssignmentAttempt) error {
	// заказ не трогали после оптимистичной записи - возвращаем и updated_at
	previousUpdatedAt := time.Time{}
	if attempt.AppliedAt != nil && current.UpdatedAt.Equal(*attempt.AppliedAt) {
		previousUpdatedAt = attempt.PreviousUpdatedAt
	}

	rolled, err := c.engine.Rollback(current, attempt.PreviousCourier, previousUpdatedAt)
	if err != nil {
		if errors.Is(err, transition.ErrInvalidTransition) {
			return fmt.Errorf("%w: order %s attempt %d: %w", ErrRollbackConflict, current.ID, attempt.Token, err)
		}
		return fmt.Errorf("rollback courier: %w", err)
	}

	if _, err := c.orders.Update(ctx, courierModify(rolled)); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (c *Coordinator) supersede(ctx context.Context, current entities.Order, latest entities.AssignmentAttempt, now time.Time) (*entities.Order, error) {
	if latest.Optimistic {
		if err := c.rollbackOrder(ctx, current, latest); err != nil {
			return nil, err
		}

		restored, err := c.orders.GetByID(ctx, current.ID)
		if err != nil {
			return nil, fmt.Errorf("get order: %w", err)
		}
		current = *restored
	}

	state := entities.AssignmentSuperseded
	if _, err := c.attempts.Update(ctx, entities.AssignmentAttemptModify{
		Token:      &latest.Token,
		State:      &state,
		ResolvedAt: &now,
	}); err != nil {
		return nil, fmt.Errorf("supersede assignment attempt: %w", err)
	}
	return &current, nil
}

func (c *Coordinator) resolve(ctx context.Context, attempt entities.AssignmentAttempt, state entities.AssignmentState, reason string) (*entities.AssignmentAttempt, error) {
	now := c.clock.Now()
	modify := entities.AssignmentAttemptModify{
		Token:      &attempt.Token,
		State:      &state,
		ResolvedAt: &now,
	}
	if reason != "" {
		modify.Reason = &reason
	}

	resolved, err := c.attempts.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("resolve assignment attempt: %w", err)
	}
	return resolved, nil
}

func (c *Coordinator) markDispatchFailed(ctx context.Context, attempt entities.AssignmentAttempt, reason string) error {
	return c.txManager.Do(ctx, func(ctx context.Context) error {
		latest, err := c.latest(ctx, attempt.OrderID)
		if err != nil {
			return err
		}

		if latest == nil || latest.Token != attempt.Token || !latest.State.IsPending() {
			return nil
		}

		_, err = c.resolve(ctx, *latest, entities.AssignmentDispatchFailed, reason)
		return err
	})
}

func (c *Coordinator) latest(ctx context.Context, orderID string) (*entities.AssignmentAttempt, error) {
	latest, err := c.attempts.Latest(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrAttemptNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest assignment attempt: %w", err)
	}
	return latest, nil
}

func checkEligible(order entities.Order) error {
	if order.Method != entities.HomeDelivery {
		return fmt.Errorf("%w: %s order", ErrNotEligible, order.Method)
	}
	if !transition.AssignmentEligible(order.Status) {
		return fmt.Errorf("%w: status %s", ErrNotEligible, order.Status)
	}
	return nil
}

func assigned(ref *entities.CourierRef) bool {
	return ref != nil && (ref.External || ref.HasContact())
}

func courierRef(target entities.AssignmentTarget, phone string) *entities.CourierRef {
	return &entities.CourierRef{
		CourierID: target.CourierID,
		External:  target.External,
		Phone:     phone,
	}
}

func courierModify(order entities.Order) entities.OrderModify {
	id := order.ID
	updatedAt := order.UpdatedAt

	modify := entities.OrderModify{
		ID:        &id,
		UpdatedAt: &updatedAt,
	}
	if order.Courier == nil {
		modify.ClearCourier = true
	} else {
		modify.Courier = order.Courier
	}
	return modify
}

func buildRequest(order entities.Order, attempt entities.AssignmentAttempt, courier *entities.Courier) entities.AssignmentRequest {
	request := entities.AssignmentRequest{
		RequestID:        uuid.NewString(),
		OrderID:          order.ID,
		Token:            attempt.Token,
		Target:           attempt.Target,
		CustomerName:     order.Customer.Name,
		CustomerPhone:    order.Customer.Phone,
		Address:          order.Customer.Address,
		DeliveryAt:       order.DeliveryAt,
		CollectionAmount: ledger.Collection(order),
		Note:             order.Note,
	}

	if courier != nil {
		request.CourierName = courier.Name
		request.CourierPhone = courier.Phone
	} else if attempt.Target.External {
		request.CourierName = entities.ExternalCourierKey
	}
	return request
}

func dispatchFailureReason(ack *entities.DispatchAck, err error) string {
	if err != nil {
		return err.Error()
	}
	if ack != nil && ack.Message != "" {
		return ack.Message
	}
	return "request not accepted"
}
