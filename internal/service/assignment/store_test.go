package assignment_test

import (
	"context"
	"sync"
	"time"

	"bakeryops/internal/entities"
	"bakeryops/internal/service/assignment"
	"bakeryops/internal/service/courier"
	"bakeryops/internal/service/order"
	"go.uber.org/mock/gomock"
)

// store - состояние в памяти за gomock-репозиториями, чтобы проверять сценарии целиком.
type store struct {
	mu        sync.Mutex
	orders    map[string]entities.Order
	couriers  map[int64]entities.Courier
	attempts  []entities.AssignmentAttempt
	nextToken int64
}

func newStore(orders ...entities.Order) *store {
	s := &store{
		orders:   make(map[string]entities.Order, len(orders)),
		couriers: make(map[int64]entities.Courier, len(roster)),
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	for _, c := range roster {
		s.couriers[c.ID] = c
	}
	return s
}

func (s *store) order(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orders[id]
}

// setStatus меняет статус в обход координатора.
func (s *store) setStatus(id string, status entities.OrderStatusType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.orders[id]
	o.Status = status
	s.orders[id] = o
}

func (s *store) attempt(token int64) entities.AssignmentAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.attempts {
		if a.Token == token {
			return a
		}
	}
	return entities.AssignmentAttempt{}
}

func (s *store) wire(m *mock) {
	m.MockTxManager.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	m.MockOrderRepository.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*entities.Order, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			o, ok := s.orders[id]
			if !ok {
				return nil, order.ErrOrderNotFound
			}
			return &o, nil
		}).AnyTimes()

	m.MockOrderRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, modify entities.OrderModify) (*entities.Order, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			o, ok := s.orders[*modify.ID]
			if !ok {
				return nil, order.ErrOrderNotFound
			}
			if modify.ClearCourier {
				o.Courier = nil
			}
			if modify.Courier != nil {
				c := *modify.Courier
				o.Courier = &c
			}
			if modify.UpdatedAt != nil {
				o.UpdatedAt = *modify.UpdatedAt
			}
			s.orders[o.ID] = o
			return &o, nil
		}).AnyTimes()

	m.MockCourierRepository.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*entities.Courier, error) {
			c, ok := s.couriers[id]
			if !ok {
				return nil, courier.ErrCourierNotFound
			}
			return &c, nil
		}).AnyTimes()

	m.MockAttemptRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt entities.AssignmentAttempt) (*entities.AssignmentAttempt, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			s.nextToken++
			attempt.Token = s.nextToken
			s.attempts = append(s.attempts, attempt)
			return &attempt, nil
		}).AnyTimes()

	m.MockAttemptRepository.EXPECT().
		Latest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, orderID string) (*entities.AssignmentAttempt, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i := len(s.attempts) - 1; i >= 0; i-- {
				if s.attempts[i].OrderID == orderID {
					a := s.attempts[i]
					return &a, nil
				}
			}
			return nil, assignment.ErrAttemptNotFound
		}).AnyTimes()

	m.MockAttemptRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, modify entities.AssignmentAttemptModify) (*entities.AssignmentAttempt, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i := range s.attempts {
				a := &s.attempts[i]
				if a.Token != *modify.Token {
					continue
				}
				if modify.State != nil {
					a.State = *modify.State
				}
				if modify.Optimistic != nil {
					a.Optimistic = *modify.Optimistic
				}
				if modify.AppliedAt != nil {
					appliedAt := *modify.AppliedAt
					a.AppliedAt = &appliedAt
				}
				if modify.Reason != nil {
					a.Reason = *modify.Reason
				}
				if modify.ResolvedAt != nil {
					resolvedAt := *modify.ResolvedAt
					a.ResolvedAt = &resolvedAt
				}
				result := *a
				return &result, nil
			}
			return nil, assignment.ErrAttemptNotFound
		}).AnyTimes()

	m.MockAttemptRepository.EXPECT().
		ListExpired(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time, limit uint64) ([]entities.AssignmentAttempt, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			var result []entities.AssignmentAttempt
			for _, a := range s.attempts {
				if a.State.IsPending() && a.Deadline.Before(now) && uint64(len(result)) < limit {
					result = append(result, a)
				}
			}
			return result, nil
		}).AnyTimes()
}
