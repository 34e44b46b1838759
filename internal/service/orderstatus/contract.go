//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderstatus_test
package orderstatus

import (
	"context"

	"kuryecini/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// UpdateStatusCAS выполняет единственную условную запись с фильтром
	// по id И текущему статусу. Ноль затронутых строк означает проигранную
	// гонку (ErrStatusConflict) либо отсутствие заказа (ErrOrderNotFound).
	UpdateStatusCAS(ctx context.Context, transition entities.StatusTransition, entry entities.TimelineEntry) (*entities.Order, error)
}

type Publisher interface {
	Publish(topic string, event entities.Event)
}
