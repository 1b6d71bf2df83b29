package app

import (
	"context"
	"time"

	"bakeryops/internal/handlers/tasks/assignment_expiry"
	"bakeryops/internal/pkg/config"
	"bakeryops/internal/pkg/factory/assignment_deadline"
	assignmentRepo "bakeryops/internal/repository/assignment"
	courierRepo "bakeryops/internal/repository/courier"
	orderRepo "bakeryops/internal/repository/order"
	visibilityRepo "bakeryops/internal/repository/visibility"
	"bakeryops/internal/service/assignment"
	courierService "bakeryops/internal/service/courier"
	"bakeryops/internal/service/deadline"
	orderService "bakeryops/internal/service/order"
	"bakeryops/internal/service/schedule"
	"bakeryops/internal/service/transition"
	"bakeryops/internal/service/visibility"
	"bakeryops/pkg/background"
	"bakeryops/pkg/clock"
	"bakeryops/pkg/logger"
	"bakeryops/pkg/querier"
	"bakeryops/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	ExpiryInterval time.Duration
	ScheduleSlots  []string
)

type Application struct {
	Orders            *orderService.Service
	Couriers          *courierService.Courier
	Dashboard         *schedule.Dashboard
	Coordinator       *assignment.Coordinator
	Clock             clock.Clock
	Location          *time.Location
	BackgroundWorkers *background.Worker
}

type KafkaWorkerApp struct {
	Coordinator *assignment.Coordinator
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideVisibilityRepository(client *redis.Client) *visibilityRepo.Repository {
	return visibilityRepo.New(client)
}

func provideClock() clock.Real {
	return clock.New()
}

func provideLocation(cfg *config.Config) *time.Location {
	return cfg.Shop.Location
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.AssignmentExpiryInterval)
}

func provideScheduleSlots(cfg *config.Config) (ScheduleSlots, error) {
	return schedule.Slots(cfg.Shop.SlotStartHour, cfg.Shop.SlotEndHour)
}

func provideTransitionEngine(c clock.Clock) *transition.Engine {
	return transition.New(c)
}

func provideClassifier(c clock.Clock, location *time.Location) *deadline.Classifier {
	return deadline.New(c, location)
}

func provideAssignmentDeadlineFactory(cfg *config.Config) *assignment_deadline.AssignmentDeadlineFactory {
	return assignment_deadline.New(cfg.Assignment.CourierTimeout, cfg.Assignment.ExternalTimeout)
}

func provideOrderService(
	repository orderService.Repository,
	attempts orderService.AttemptRepository,
	engine orderService.TransitionEngine,
	c clock.Clock,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, attempts, engine, c, txManager)
}

func provideCourierService(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideVisibilityPolicy(store visibility.ToggleStore) *visibility.Policy {
	return visibility.New(store)
}

func provideDashboard(
	orders schedule.OrderRepository,
	couriers schedule.CourierRepository,
	policy schedule.VisibilityPolicy,
	classifier schedule.Classifier,
	slots ScheduleSlots,
	txManager schedule.TxManager,
) *schedule.Dashboard {
	return schedule.NewDashboard(orders, couriers, policy, classifier, slots, txManager)
}

func provideCoordinator(
	orders assignment.OrderRepository,
	attempts assignment.AttemptRepository,
	couriers assignment.CourierRepository,
	dispatch assignment.DispatchChannel,
	engine assignment.TransitionEngine,
	deadlines assignment.DeadlineFactory,
	c clock.Clock,
	txManager assignment.TxManager,
) *assignment.Coordinator {
	return assignment.New(orders, attempts, couriers, dispatch, engine, deadlines, c, txManager)
}

func provideAssignmentExpiryTask(
	log logger.Logger,
	service assignment_expiry.Service,
	interval ExpiryInterval,
) *assignment_expiry.AssignmentExpiry {
	return assignment_expiry.NewAssignmentExpiry(log, service, time.Duration(interval))
}

func provideTaskList(
	assignmentExpiryTask *assignment_expiry.AssignmentExpiry,
) []background.Task {
	return []background.Task{
		assignmentExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
