package orders_feed

import (
	"kuryecini/internal/ws"
	"kuryecini/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	Attach(client *ws.Client, topics ...string)
	DetachAll(client *ws.Client)
	HandleSubscribe(client *ws.Client, payload []byte, allowed func(topic string) bool)
}
