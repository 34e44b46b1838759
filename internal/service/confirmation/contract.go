//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=confirmation_test
package confirmation

import (
	"context"

	"kuryecini/internal/entities"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)

	// Apply выполняет переход без публикации события: вызов идет внутри
	// транзакции, событие публикуется после коммита через PublishStatusChanged.
	Apply(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error)
	PublishStatusChanged(order *entities.Order, from entities.OrderStatusType)
}

type TaskRepository interface {
	Create(ctx context.Context, draft entities.TaskDraft) (*entities.CourierTask, error)
}

type BusinessRepository interface {
	GetByID(ctx context.Context, businessID string) (*entities.Business, error)
}

type Publisher interface {
	Publish(topic string, event entities.Event)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
