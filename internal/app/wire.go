//go:build wireinject
// +build wireinject

package app

import (
	"context"

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
	"bakeryops/pkg/clock"
	"bakeryops/pkg/logger"
	"bakeryops/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourierRepository,
	provideOrderRepository,
	provideAssignmentRepository,
)

var coordinatorSet = wire.NewSet(
	provideClock,
	provideTransitionEngine,
	provideAssignmentDeadlineFactory,
	provideCoordinator,

	wire.Bind(new(clock.Clock), new(clock.Real)),
	wire.Bind(new(assignment.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(assignment.AttemptRepository), new(*assignmentRepo.Repository)),
	wire.Bind(new(assignment.CourierRepository), new(*courierRepo.Repository)),
	wire.Bind(new(assignment.TransitionEngine), new(*transition.Engine)),
	wire.Bind(new(assignment.DeadlineFactory), new(*assignment_deadline.AssignmentDeadlineFactory)),
	wire.Bind(new(assignment.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	dispatch assignment.DispatchChannel,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		coordinatorSet,

		provideVisibilityRepository,
		provideLocation,
		provideExpiryInterval,
		provideScheduleSlots,

		provideOrderService,
		provideCourierService,
		provideClassifier,
		provideVisibilityPolicy,
		provideDashboard,

		provideAssignmentExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AttemptRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(orderService.TransitionEngine), new(*transition.Engine)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(schedule.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(schedule.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(schedule.VisibilityPolicy), new(*visibility.Policy)),
		wire.Bind(new(schedule.Classifier), new(*deadline.Classifier)),
		wire.Bind(new(schedule.TxManager), new(*tx.Manager)),
		wire.Bind(new(visibility.ToggleStore), new(*visibilityRepo.Repository)),

		wire.Bind(new(assignment_expiry.Service), new(*assignment.Coordinator)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-assignment-resolved)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	dispatch assignment.DispatchChannel,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		coordinatorSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
