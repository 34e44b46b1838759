//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_task_accept_post_test
package courier_task_accept_post

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
	Accept(ctx context.Context, taskID string, actor entities.Actor) (*entities.TaskAssignment, error)
}
