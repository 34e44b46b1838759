//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_confirm_put_test
package order_confirm_put

import (
	"context"

	"kuryecini/internal/service/confirmation"
	"kuryecini/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Confirm(ctx context.Context, req confirmation.ConfirmRequest) (*confirmation.ConfirmResult, error)
}
