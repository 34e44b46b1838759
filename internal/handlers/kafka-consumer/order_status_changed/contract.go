package order_status_changed

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
	Transition(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error)
}
