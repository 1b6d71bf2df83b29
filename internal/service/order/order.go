package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/transition"
	"github.com/google/uuid"
)

type Service struct {
	repository Repository
	attempts   AttemptRepository
	engine     TransitionEngine
	clock      Clock
	txManager  TxManager
}

func New(repository Repository, attempts AttemptRepository, engine TransitionEngine, clock Clock, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		attempts:   attempts,
		engine:     engine,
		clock:      clock,
		txManager:  txManager,
	}
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// CreateOrder сохраняет черновик. id и статус назначает сервис, курьер не переносится.
func (s *Service) CreateOrder(ctx context.Context, draft entities.Order) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	draft.ID = uuid.NewString()
	draft.Status = entities.OrderDraft
	draft.Courier = nil
	draft.FailureReason = ""
	draft.CreatedAt = now
	draft.UpdatedAt = now

	order, err := s.repository.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// TransitionOrder - единственный путь смены статуса: чтение, движок переходов, запись.
func (s *Service) TransitionOrder(ctx context.Context, id string, target entities.OrderStatusType, payload transition.Payload) (*entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidOrderID
	}
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", transition.ErrInvalidTransition, target)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if transition.AssignmentEligible(current.Status) && !transition.AssignmentEligible(target) {
			if err := s.checkNoPendingAssignment(ctx, id); err != nil {
				return err
			}
		}

		next, err := s.engine.Transition(*current, target, payload)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, toModify(next))
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DiscardOrder(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := s.engine.CanDiscard(*current); err != nil {
			return err
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

// checkNoPendingAssignment не дает увести заказ из статусов назначения, пока попытка
// ждет ответа курьера: иначе отказ уже нечем откатить.
func (s *Service) checkNoPendingAssignment(ctx context.Context, orderID string) error {
	latest, err := s.attempts.Latest(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrAttemptNotFound) {
			return nil
		}
		return fmt.Errorf("get latest assignment attempt: %w", err)
	}

	if latest.State.IsPending() {
		return fmt.Errorf("%w: attempt %d is %s", ErrAssignmentPending, latest.Token, latest.State)
	}
	return nil
}

func toModify(order entities.Order) entities.OrderModify {
	modify := entities.OrderModify{
		ID:            &order.ID,
		Status:        &order.Status,
		DeliveryAt:    &order.DeliveryAt,
		Note:          &order.Note,
		FailureReason: &order.FailureReason,
		UpdatedAt:     &order.UpdatedAt,
	}

	if order.Courier == nil {
		modify.ClearCourier = true
	} else {
		modify.Courier = order.Courier
	}
	return modify
}
