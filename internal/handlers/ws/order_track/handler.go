package order_track

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/service/orderstatus"
	"kuryecini/internal/ws"
	"kuryecini/pkg/logger"
)

var connSeq atomic.Int64

// Handler — трекинг одного заказа. Доступ есть у клиента-владельца,
// бизнеса заказа, назначенного курьера и админа, проверка до upgrade.
type Handler struct {
	log          handlerLogger
	orderService OrderService
	gateway      Gateway
	clientCfg    ws.ClientConfig
	upgrader     websocket.Upgrader
}

func New(log handlerLogger, orderService OrderService, gateway Gateway, clientCfg ws.ClientConfig) *Handler {
	return &Handler{
		log:          log.With(),
		orderService: orderService,
		gateway:      gateway,
		clientCfg:    clientCfg,
		upgrader:     websocket.Upgrader{},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authtoken.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderstatus.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderstatus.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if !canTrack(actor, order) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
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

	h.gateway.Attach(client, entities.TopicOrder(orderID))
	client.Run()
}

func canTrack(actor entities.Actor, order *entities.Order) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCustomer:
		return order.CustomerID == actor.ID
	case entities.RoleBusiness:
		return order.BusinessID == actor.ID
	case entities.RoleCourier:
		return order.CourierID != nil && *order.CourierID == actor.ID
	default:
		return false
	}
}
