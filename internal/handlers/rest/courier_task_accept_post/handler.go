package courier_task_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"kuryecini/internal/dto"
	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
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

	assignment, err := h.service.Accept(r.Context(), mux.Vars(r)["id"], actor)
	if err != nil {
		switch {
		case errors.Is(err, couriertask.ErrInvalidTaskID),
			errors.Is(err, couriertask.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, couriertask.ErrTaskNotFound),
			errors.Is(err, orderstatus.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, couriertask.ErrTaskAlreadyTaken),
			errors.Is(err, orderstatus.ErrStatusConflict):
			// проигранная гонка за задание — штатный исход, не ошибка сервера
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaskAcceptResponse{
		TaskID:    assignment.TaskID,
		OrderID:   assignment.OrderID,
		CourierID: assignment.CourierID,
		Status:    entities.TaskAssigned.String(),
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
