//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"kuryecini/internal/eventbus"
	"kuryecini/internal/handlers/rest/courier_task_accept_post"
	"kuryecini/internal/handlers/rest/courier_tasks_get"
	"kuryecini/internal/handlers/rest/order_confirm_put"
	"kuryecini/internal/handlers/rest/order_post"
	"kuryecini/internal/handlers/rest/order_status_patch"
	"kuryecini/internal/handlers/tasks/waiting_task_notify"
	"kuryecini/internal/handlers/ws/order_track"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/pkg/config"
	"kuryecini/internal/ws"

	businessRepo "kuryecini/internal/repository/business"
	taskRepo "kuryecini/internal/repository/couriertask"
	orderRepo "kuryecini/internal/repository/order"
	confirmationService "kuryecini/internal/service/confirmation"
	couriertaskService "kuryecini/internal/service/couriertask"
	orderplacementService "kuryecini/internal/service/orderplacement"
	orderstatusService "kuryecini/internal/service/orderstatus"

	"kuryecini/pkg/background"
	"kuryecini/pkg/logger"
	"kuryecini/pkg/querier"
	"kuryecini/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	NotifyInterval  time.Duration
	NotifyThreshold time.Duration
)

type Application struct {
	ServiceOrderPlacement ServiceOrderPlacement
	ServiceOrderStatus    ServiceOrderStatus
	ServiceConfirmation   ServiceConfirmation
	ServiceCourierTask    ServiceCourierTask
	EventBus              *eventbus.Bus
	WSGateway             *ws.Gateway
	TokenVerifier         *authtoken.Verifier
	BackgroundWorkers     *background.Worker
}

type ServiceOrderPlacement interface {
	order_post.Service
}

type ServiceOrderStatus interface {
	order_status_patch.Service
	order_track.OrderService
}

type ServiceConfirmation interface {
	order_confirm_put.Service
}

type ServiceCourierTask interface {
	courier_tasks_get.Service
	courier_task_accept_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideNotifyInterval,
		provideNotifyThreshold,

		provideOrderRepository,
		provideTaskRepository,
		provideBusinessRepository,

		provideEventBus,
		provideWSRegistry,
		provideWSGateway,
		provideTokenVerifier,

		provideServiceOrderStatus,
		provideServiceOrderPlacement,
		provideServiceConfirmation,
		provideServiceCourierTask,

		provideWaitingTaskNotifyTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrderPlacement), new(*orderplacementService.OrderPlacement)),
		wire.Bind(new(ServiceOrderStatus), new(*orderstatusService.OrderStatus)),
		wire.Bind(new(ServiceConfirmation), new(*confirmationService.Confirmation)),
		wire.Bind(new(ServiceCourierTask), new(*couriertaskService.CourierTask)),

		wire.Bind(new(orderstatusService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderstatusService.Publisher), new(*eventbus.Bus)),

		wire.Bind(new(orderplacementService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderplacementService.BusinessRepository), new(*businessRepo.Repository)),
		wire.Bind(new(orderplacementService.Publisher), new(*eventbus.Bus)),

		wire.Bind(new(confirmationService.OrderService), new(*orderstatusService.OrderStatus)),
		wire.Bind(new(confirmationService.TaskRepository), new(*taskRepo.Repository)),
		wire.Bind(new(confirmationService.BusinessRepository), new(*businessRepo.Repository)),
		wire.Bind(new(confirmationService.Publisher), new(*eventbus.Bus)),
		wire.Bind(new(confirmationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(couriertaskService.Repository), new(*taskRepo.Repository)),
		wire.Bind(new(couriertaskService.OrderService), new(*orderstatusService.OrderStatus)),
		wire.Bind(new(couriertaskService.Publisher), new(*eventbus.Bus)),
		wire.Bind(new(couriertaskService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ws.EventBus), new(*eventbus.Bus)),

		wire.Bind(new(waiting_task_notify.Service), new(*couriertaskService.CourierTask)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceOrderStatus ServiceOrderStatus
	EventBus           *eventbus.Bus
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideEventBus,
		provideServiceOrderStatus,

		wire.Bind(new(ServiceOrderStatus), new(*orderstatusService.OrderStatus)),
		wire.Bind(new(orderstatusService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderstatusService.Publisher), new(*eventbus.Bus)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTaskRepository(querier *querier.Querier) *taskRepo.Repository {
	return taskRepo.New(querier)
}

func provideBusinessRepository(querier *querier.Querier) *businessRepo.Repository {
	return businessRepo.New(querier)
}

func provideEventBus(log logger.Logger, cfg *config.Config) *eventbus.Bus {
	return eventbus.New(log, cfg.EventBus.PublishTimeout)
}

func provideWSRegistry(log logger.Logger) *ws.Registry {
	return ws.NewRegistry(log)
}

func provideWSGateway(bus ws.EventBus, registry *ws.Registry, log logger.Logger) *ws.Gateway {
	return ws.NewGateway(bus, registry, log)
}

func provideTokenVerifier(cfg *config.Config) *authtoken.Verifier {
	return authtoken.NewVerifier(cfg.Auth.JWTSecret)
}

func provideServiceOrderStatus(
	repository orderstatusService.Repository,
	publisher orderstatusService.Publisher,
) *orderstatusService.OrderStatus {
	return orderstatusService.New(repository, publisher)
}

func provideServiceOrderPlacement(
	repository orderplacementService.Repository,
	businessRepository orderplacementService.BusinessRepository,
	publisher orderplacementService.Publisher,
) *orderplacementService.OrderPlacement {
	return orderplacementService.New(repository, businessRepository, publisher)
}

func provideServiceConfirmation(
	orderService confirmationService.OrderService,
	taskRepository confirmationService.TaskRepository,
	businessRepository confirmationService.BusinessRepository,
	publisher confirmationService.Publisher,
	txManager confirmationService.TxManager,
) *confirmationService.Confirmation {
	return confirmationService.New(orderService, taskRepository, businessRepository, publisher, txManager)
}

func provideServiceCourierTask(
	repository couriertaskService.Repository,
	orderService couriertaskService.OrderService,
	publisher couriertaskService.Publisher,
	txManager couriertaskService.TxManager,
) *couriertaskService.CourierTask {
	return couriertaskService.New(repository, orderService, publisher, txManager)
}

func provideNotifyInterval(cfg *config.Config) NotifyInterval {
	return NotifyInterval(cfg.Tasks.WaitingTaskNotifyInterval)
}

func provideNotifyThreshold(cfg *config.Config) NotifyThreshold {
	return NotifyThreshold(cfg.Tasks.WaitingTaskNotifyThreshold)
}

func provideWaitingTaskNotifyTask(
	log logger.Logger,
	courierTaskService waiting_task_notify.Service,
	interval NotifyInterval,
	threshold NotifyThreshold,
) *waiting_task_notify.WaitingTaskNotify {
	return waiting_task_notify.NewWaitingTaskNotify(log, courierTaskService, time.Duration(interval), time.Duration(threshold))
}

func provideTaskList(
	waitingTaskNotifyTask *waiting_task_notify.WaitingTaskNotify,
) []background.Task {
	return []background.Task{
		waitingTaskNotifyTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
