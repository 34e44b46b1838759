// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
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
	"kuryecini/internal/repository/business"
	"kuryecini/internal/repository/couriertask"
	"kuryecini/internal/repository/order"
	"kuryecini/internal/service/confirmation"
	couriertask2 "kuryecini/internal/service/couriertask"
	"kuryecini/internal/service/orderplacement"
	"kuryecini/internal/service/orderstatus"
	"kuryecini/internal/ws"
	"kuryecini/pkg/background"
	"kuryecini/pkg/logger"
	"kuryecini/pkg/querier"
	"kuryecini/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	businessRepository := provideBusinessRepository(querier)
	bus := provideEventBus(log, cfg)
	orderPlacement := provideServiceOrderPlacement(repository, businessRepository, bus)
	orderStatus := provideServiceOrderStatus(repository, bus)
	couriertaskRepository := provideTaskRepository(querier)
	manager := provideTxManager(pool)
	confirmation := provideServiceConfirmation(orderStatus, couriertaskRepository, businessRepository, bus, manager)
	courierTask := provideServiceCourierTask(couriertaskRepository, orderStatus, bus, manager)
	registry := provideWSRegistry(log)
	gateway := provideWSGateway(bus, registry, log)
	verifier := provideTokenVerifier(cfg)
	notifyInterval := provideNotifyInterval(cfg)
	notifyThreshold := provideNotifyThreshold(cfg)
	waitingTaskNotify := provideWaitingTaskNotifyTask(log, courierTask, notifyInterval, notifyThreshold)
	v := provideTaskList(waitingTaskNotify)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceOrderPlacement: orderPlacement,
		ServiceOrderStatus:    orderStatus,
		ServiceConfirmation:   confirmation,
		ServiceCourierTask:    courierTask,
		EventBus:              bus,
		WSGateway:             gateway,
		TokenVerifier:         verifier,
		BackgroundWorkers:     worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	bus := provideEventBus(log, cfg)
	orderStatus := provideServiceOrderStatus(repository, bus)
	kafkaWorkerApp := &KafkaWorkerApp{
		ServiceOrderStatus: orderStatus,
		EventBus:           bus,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

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

type KafkaWorkerApp struct {
	ServiceOrderStatus ServiceOrderStatus
	EventBus           *eventbus.Bus
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideTaskRepository(querier2 *querier.Querier) *couriertask.Repository {
	return couriertask.New(querier2)
}

func provideBusinessRepository(querier2 *querier.Querier) *business.Repository {
	return business.New(querier2)
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
	repository orderstatus.Repository,
	publisher orderstatus.Publisher,
) *orderstatus.OrderStatus {
	return orderstatus.New(repository, publisher)
}

func provideServiceOrderPlacement(
	repository orderplacement.Repository,
	businessRepository orderplacement.BusinessRepository,
	publisher orderplacement.Publisher,
) *orderplacement.OrderPlacement {
	return orderplacement.New(repository, businessRepository, publisher)
}

func provideServiceConfirmation(
	orderService confirmation.OrderService,
	taskRepository confirmation.TaskRepository,
	businessRepository confirmation.BusinessRepository,
	publisher confirmation.Publisher,
	txManager confirmation.TxManager,
) *confirmation.Confirmation {
	return confirmation.New(orderService, taskRepository, businessRepository, publisher, txManager)
}

func provideServiceCourierTask(
	repository couriertask2.Repository,
	orderService couriertask2.OrderService,
	publisher couriertask2.Publisher,
	txManager couriertask2.TxManager,
) *couriertask2.CourierTask {
	return couriertask2.New(repository, orderService, publisher, txManager)
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
