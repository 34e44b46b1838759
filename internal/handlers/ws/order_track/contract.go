//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_track_test
package order_track

import (
	"context"

	"kuryecini/internal/entities"
	"kuryecini/internal/ws"
	"kuryecini/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
}

type Gateway interface {
	Attach(client *ws.Client, topics ...string)
	DetachAll(client *ws.Client)
}
