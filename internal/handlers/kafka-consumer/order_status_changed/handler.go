package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"kuryecini/internal/entities"
	"kuryecini/internal/service/orderstatus"
	"kuryecini/pkg/logger"
)

// statusChangedEvent — сообщение внешних интеграций (POS, платежный шлюз)
// о смене статуса заказа на их стороне.
type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Source  string `json:"source,omitempty"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("to", event.To),
		logger.NewField("source", event.Source),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	actorID := event.Source
	if actorID == "" {
		actorID = "external"
	}

	order, err := h.orderService.Transition(ctx, entities.StatusTransition{
		OrderID:      event.OrderID,
		ExpectedFrom: entities.OrderStatusType(event.From),
		Target:       entities.OrderStatusType(event.To),
		Actor:        entities.Actor{ID: actorID, Role: entities.RoleSystem},
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderstatus.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler rejected transition")

		case errors.Is(err, orderstatus.ErrStatusConflict):
			// гонка с параллельным обновлением, внешняя система пришлет ретрай
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler status conflict for order")

		case errors.Is(err, orderstatus.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("target_status", event.To),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
