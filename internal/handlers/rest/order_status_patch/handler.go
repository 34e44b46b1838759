package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"kuryecini/internal/dto"
	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/service/orderstatus"
	"kuryecini/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authtoken.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var statusDTO dto.OrderStatusPatchRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.Transition(r.Context(), entities.StatusTransition{
		OrderID:      mux.Vars(r)["id"],
		ExpectedFrom: entities.OrderStatusType(statusDTO.From),
		Target:       entities.OrderStatusType(statusDTO.To),
		Actor:        actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, orderstatus.ErrInvalidOrderID),
			errors.Is(err, orderstatus.ErrMissingRequiredFields),
			errors.Is(err, orderstatus.ErrInvalidTransition):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderstatus.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderstatus.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, orderstatus.ErrStatusConflict):
			// проигранный CAS — штатная гонка, клиент перечитывает заказ и решает сам
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
