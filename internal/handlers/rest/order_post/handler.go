package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"kuryecini/internal/dto"
	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/service/orderplacement"
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

	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.OrderDraft{
		BusinessID: orderCreateDTO.BusinessID,
		CustomerID: actor.ID,
		Subtotal:   orderCreateDTO.Subtotal,
		Address: entities.DeliveryAddress{
			Label:    orderCreateDTO.Address.Label,
			Street:   orderCreateDTO.Address.Street,
			City:     orderCreateDTO.Address.City,
			District: orderCreateDTO.Address.District,
			Lat:      orderCreateDTO.Address.Lat,
			Lng:      orderCreateDTO.Address.Lng,
		},
	}

	orderEntity, err := h.service.Place(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, orderplacement.ErrMissingRequiredFields),
			errors.Is(err, orderplacement.ErrInvalidSubtotal),
			errors.Is(err, orderplacement.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderplacement.ErrBusinessNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
