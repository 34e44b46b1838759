//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_tasks_get_test
package courier_tasks_get

import (
	"context"

	"kuryecini/internal/entities"
	"kuryecini/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListWaiting(ctx context.Context) ([]entities.CourierTask, error)
}
