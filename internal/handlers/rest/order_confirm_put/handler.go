package order_confirm_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"kuryecini/internal/dto"
	"kuryecini/internal/pkg/authtoken"
	"kuryecini/internal/service/confirmation"
	"kuryecini/internal/service/couriertask"
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

	var confirmDTO dto.OrderConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.Confirm(r.Context(), confirmation.ConfirmRequest{
		OrderID:         mux.Vars(r)["id"],
		Actor:           actor,
		UnitDeliveryFee: confirmDTO.UnitDeliveryFee,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrInvalidDeliveryFee),
			errors.Is(err, orderstatus.ErrInvalidOrderID),
			errors.Is(err, orderstatus.ErrInvalidTransition):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderstatus.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderstatus.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, orderstatus.ErrStatusConflict),
			errors.Is(err, couriertask.ErrOrderAlreadyTasked):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderConfirmResponse{
		Success: true,
		Message: "order confirmed, courier task created",
		OrderID: result.OrderID,
		TaskID:  result.TaskID,
		Status:  result.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
