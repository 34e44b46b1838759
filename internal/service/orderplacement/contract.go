//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderplacement_test
package orderplacement

import (
	"context"

	"kuryecini/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, draft entities.OrderDraft, deliveryFee float64) (*entities.Order, error)
}

type BusinessRepository interface {
	GetByID(ctx context.Context, businessID string) (*entities.Business, error)
}

type Publisher interface {
	Publish(topic string, event entities.Event)
}
