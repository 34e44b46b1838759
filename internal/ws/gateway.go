package ws

import (
	"encoding/json"
	"sync"
	"time"

	"kuryecini/internal/entities"
	"kuryecini/internal/eventbus"
	"kuryecini/pkg/logger"
)

type EventBus interface {
	Subscribe(topic string, handler eventbus.Handler) int64
	Unsubscribe(topic string, id int64)
}

// Frame — исходящий кадр уведомления в том виде, в котором его видят клиенты.
type Frame struct {
	Type       string                 `json:"type"`
	OrderID    string                 `json:"order_id,omitempty"`
	BusinessID string                 `json:"business_id,omitempty"`
	TaskID     string                 `json:"task_id,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

type subscribeMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

type ackFrame struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

type relay struct {
	subID int64
	refs  int
}

// Gateway связывает шину событий с реестром соединений: на топик с хотя бы
// одним слушателем держится ровно одна подписка на шине, события
// транслируются в реестр готовыми кадрами. attached хранит топики каждого
// соединения, чтобы повторный subscribe не накручивал счетчик ретранслятора
// и DetachAll освобождал ровно то, что было захвачено.
type Gateway struct {
	bus      EventBus
	registry *Registry
	log      connLogger

	mu       sync.Mutex
	relays   map[string]*relay
	attached map[string]map[string]struct{}
}

func NewGateway(bus EventBus, registry *Registry, log connLogger) *Gateway {
	return &Gateway{
		bus:      bus,
		registry: registry,
		log:      log.With(),
		relays:   make(map[string]*relay),
		attached: make(map[string]map[string]struct{}),
	}
}

// Attach подписывает соединение на топики и подтверждает его кадром
// {"type":"connected"}. Для каждого топика при первом слушателе создается
// ретранслятор событий шины.
func (g *Gateway) Attach(client *Client, topics ...string) {
	g.attach(client, topics...)
	g.reply(client, ackFrame{Type: "connected"})
}

func (g *Gateway) attach(client *Client, topics ...string) {
	for _, topic := range topics {
		if !g.track(client.ID(), topic) {
			continue
		}
		g.registry.Add(topic, client)
		g.acquireRelay(topic)
	}
}

// track запоминает пару соединение-топик; false — пара уже была.
func (g *Gateway) track(clientID, topic string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	topics := g.attached[clientID]
	if topics == nil {
		topics = make(map[string]struct{})
		g.attached[clientID] = topics
	}
	if _, ok := topics[topic]; ok {
		return false
	}
	topics[topic] = struct{}{}
	return true
}

// DetachAll снимает соединение со всех топиков; зовется из onClose.
func (g *Gateway) DetachAll(client *Client) {
	g.mu.Lock()
	topics := g.attached[client.ID()]
	delete(g.attached, client.ID())
	g.mu.Unlock()

	for topic := range topics {
		g.registry.Remove(topic, client.ID())
		g.releaseRelay(topic)
	}
}

// HandleSubscribe разбирает клиентский управляющий кадр
// {"type":"subscribe","topic":"..."}. allowed ограничивает топики,
// доступные конкретному типу клиента: курьер не может слушать бизнес.
func (g *Gateway) HandleSubscribe(client *Client, payload []byte, allowed func(topic string) bool) {
	var msg subscribeMessage
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Type != "subscribe" {
		g.reply(client, ackFrame{Type: "error"})
		return
	}

	// subscribe без топика — keepalive-подтверждение уже выданных подписок
	if msg.Topic == "" {
		g.reply(client, ackFrame{Type: "subscribed"})
		return
	}

	if !allowed(msg.Topic) {
		g.reply(client, ackFrame{Type: "error", Topic: msg.Topic})
		return
	}

	g.attach(client, msg.Topic)
	g.reply(client, ackFrame{Type: "subscribed", Topic: msg.Topic})
}

func (g *Gateway) reply(client *Client, frame ackFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	client.TrySend(payload)
}

func (g *Gateway) acquireRelay(topic string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.relays[topic]; ok {
		r.refs++
		return
	}

	subID := g.bus.Subscribe(topic, func(event entities.Event) {
		g.forward(topic, event)
	})
	g.relays[topic] = &relay{subID: subID, refs: 1}
}

func (g *Gateway) releaseRelay(topic string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.relays[topic]
	if !ok {
		return
	}

	r.refs--
	if r.refs > 0 {
		return
	}

	delete(g.relays, topic)
	g.bus.Unsubscribe(topic, r.subID)
}

func (g *Gateway) forward(topic string, event entities.Event) {
	payload, err := json.Marshal(Frame{
		Type:       event.Type.String(),
		OrderID:    event.OrderID,
		BusinessID: event.BusinessID,
		TaskID:     event.TaskID,
		Timestamp:  event.Timestamp,
		Data:       event.Data,
	})
	if err != nil {
		g.log.With(
			logger.NewField("topic", topic),
			logger.NewField("error", err.Error()),
		).Error("notification frame marshal failed")
		return
	}

	g.registry.Broadcast(topic, payload)
}
