package waiting_task_notify

import (
	"context"
	"time"

	"kuryecini/pkg/logger"
)

type Service interface {
	NudgeStaleWaiting(ctx context.Context, threshold time.Duration) (int64, error)
}

// WaitingTaskNotify периодически переобъявляет задания, которые никто
// не принял: курьеры, подключившиеся после исходной публикации,
// события в шине не застали.
type WaitingTaskNotify struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	threshold time.Duration
}

func NewWaitingTaskNotify(log logger.Logger, service Service, interval, threshold time.Duration) *WaitingTaskNotify {
	return &WaitingTaskNotify{
		log:       log,
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (w *WaitingTaskNotify) TTL() time.Duration {
	return w.interval
}

func (w *WaitingTaskNotify) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	renotified, err := w.service.NudgeStaleWaiting(ctxWithTimeout, w.threshold)

	if renotified > 0 {
		w.log.With(
			logger.NewField("waiting_tasks", renotified),
		).Info("waiting task notify")
	}

	return err
}

func (w *WaitingTaskNotify) Info() string {
	return "waiting task notify"
}
