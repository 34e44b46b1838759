package ws

import (
	"sync"

	"kuryecini/pkg/logger"
)

// Registry хранит соединения по топикам: topic -> conn_id -> клиент.
// Одно соединение может состоять в нескольких топиках.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]map[string]*Client
	log    connLogger
}

func NewRegistry(log connLogger) *Registry {
	return &Registry{
		topics: make(map[string]map[string]*Client),
		log:    log.With(),
	}
}

func (r *Registry) Add(topic string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.topics[topic] == nil {
		r.topics[topic] = make(map[string]*Client)
	}
	r.topics[topic][client.ID()] = client
}

func (r *Registry) Remove(topic, clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, ok := r.topics[topic]
	if !ok {
		return
	}

	delete(clients, clientID)
	if len(clients) == 0 {
		delete(r.topics, topic)
	}
}

func (r *Registry) Count(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.topics[topic])
}

// Broadcast рассылает кадр всем соединениям топика. Соединение с
// переполненным буфером закрывается через Shutdown: его onClose снимет
// подписки и уберет его из реестра, остальных получателей это не
// затрагивает. Возвращает число доставленных кадров.
func (r *Registry) Broadcast(topic string, payload []byte) int {
	r.mu.RLock()
	snapshot := make([]*Client, 0, len(r.topics[topic]))
	for _, client := range r.topics[topic] {
		snapshot = append(snapshot, client)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, client := range snapshot {
		if client.TrySend(payload) {
			delivered++
			continue
		}

		FramesDroppedTotal.WithLabelValues(topic).Inc()
		r.log.With(
			logger.NewField("topic", topic),
			logger.NewField("conn_id", client.ID()),
		).Warn("send buffer full, dropping connection")

		client.Shutdown()
	}

	FramesDeliveredTotal.WithLabelValues(topic).Add(float64(delivered))
	return delivered
}
