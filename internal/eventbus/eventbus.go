package eventbus

import (
	"runtime/debug"
	"sync"
	"time"

	"kuryecini/internal/entities"
	"kuryecini/pkg/logger"
)

// Handler вызывается на каждую публикацию по подписанному топику.
// Паника внутри обработчика не влияет на остальных подписчиков.
type Handler func(event entities.Event)

type busLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Bus — процессный pub/sub без персистентности и гарантий порядка между топиками.
// Подписчики, появившиеся после publish, событие не получают.
type Bus struct {
	mu             sync.RWMutex
	subscribers    map[string]map[int64]Handler
	nextID         int64
	log            busLogger
	publishTimeout time.Duration
}

func New(log busLogger, publishTimeout time.Duration) *Bus {
	return &Bus{
		subscribers:    make(map[string]map[int64]Handler),
		log:            log.With(),
		publishTimeout: publishTimeout,
	}
}

// Subscribe возвращает id подписки для Unsubscribe:
// функции не сравнимы, поэтому снятие подписки по самому обработчику невозможно.
func (b *Bus) Subscribe(topic string, handler Handler) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[int64]Handler)
	}
	b.subscribers[topic][id] = handler

	SubscribersGauge.Inc()
	return id
}

// Unsubscribe безопасен для незнакомых id, в том числе из собственного обработчика.
func (b *Bus) Unsubscribe(topic string, id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.subscribers[topic]
	if !ok {
		return
	}

	if _, ok := handlers[id]; !ok {
		return
	}

	delete(handlers, id)
	if len(handlers) == 0 {
		delete(b.subscribers, topic)
	}
	SubscribersGauge.Dec()
}

// Publish вызывает всех текущих подписчиков топика конкурентно и ждет
// их завершения не дольше publishTimeout. Зависшие обработчики бросаются
// с предупреждением — publish никогда не блокируется на мертвом подписчике.
func (b *Bus) Publish(topic string, event entities.Event) {
	b.mu.RLock()
	// снапшот набора обработчиков: конкурентные subscribe/unsubscribe
	// во время рассылки не должны ломать итерацию
	handlers := make([]Handler, 0, len(b.subscribers[topic]))
	for _, h := range b.subscribers[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	PublishedTotal.WithLabelValues(topic).Inc()

	if len(handlers) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, handler := range handlers {
		wg.Add(1)
		go func(h Handler) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					HandlerPanicsTotal.WithLabelValues(topic).Inc()
					b.log.With(
						logger.NewField("topic", topic),
						logger.NewField("event_type", event.Type.String()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					).Error("event handler panic")
				}
			}()
			h(event)
		}(handler)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(b.publishTimeout):
		PublishTimeoutsTotal.WithLabelValues(topic).Inc()
		b.log.With(
			logger.NewField("topic", topic),
			logger.NewField("event_type", event.Type.String()),
			logger.NewField("timeout", b.publishTimeout.String()),
		).Warn("publish timed out, abandoning pending handlers")
	}
}
