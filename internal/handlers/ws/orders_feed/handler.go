package orders_feed

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/ws"
	"kuryecini/pkg/logger"
)

var connSeq atomic.Int64

// Handler — живая лента заказов бизнеса. Админ дополнительно получает
// сквозной поток по всем заказам.
type Handler struct {
	log       handlerLogger
	gateway   Gateway
	clientCfg ws.ClientConfig
	upgrader  websocket.Upgrader
}

func New(log handlerLogger, gateway Gateway, clientCfg ws.ClientConfig) *Handler {
	return &Handler{
		log:       log.With(),
		gateway:   gateway,
		clientCfg: clientCfg,
		upgrader:  websocket.Upgrader{},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authtoken.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	topics := []string{entities.TopicBusiness(actor.ID)}
	if actor.Role == entities.RoleAdmin {
		topics = []string{entities.TopicOrdersAll}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader сам пишет ответ с ошибкой
		h.log.With(
			logger.NewField("error", err.Error()),
		).Warn("websocket upgrade failed")
		return
	}

	client := ws.NewClient(
		fmt.Sprintf("%s-%d", actor.ID, connSeq.Add(1)),
		conn,
		h.clientCfg,
		h.log,
	)
	client.OnClose(h.gateway.DetachAll)
	client.OnMessage(func(c *ws.Client, payload []byte) {
		h.gateway.HandleSubscribe(c, payload, func(topic string) bool {
			for _, allowed := range topics {
				if topic == allowed {
					return true
				}
			}
			return false
		})
	})

	h.gateway.Attach(client, topics...)
	client.Run()
}
