//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriertask_test
package couriertask

import (
	"context"
	"time"

	"kuryecini/internal/entities"
)

type Repository interface {
	// AssignCAS — условная запись с фильтром courier_id IS NULL,
	// первый принявший курьер выигрывает, ноль строк означает проигрыш гонки.
	AssignCAS(ctx context.Context, taskID, courierID string) (*entities.CourierTask, error)

	GetByID(ctx context.Context, taskID string) (*entities.CourierTask, error)
	ListWaiting(ctx context.Context) ([]entities.CourierTask, error)
	ListWaitingOlderThan(ctx context.Context, age time.Duration) ([]entities.CourierTask, error)
}

type OrderService interface {
	// Apply выполняет переход без публикации события: вызов идет внутри
	// транзакции, событие публикуется после коммита через PublishStatusChanged.
	Apply(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error)
	PublishStatusChanged(order *entities.Order, from entities.OrderStatusType)
}

type Publisher interface {
	Publish(topic string, event entities.Event)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
