package courier_tasks_get

import (
	"encoding/json"
	"net/http"

	"kuryecini/internal/dto"
	"kuryecini/pkg/logger"
)

// Handler отдает список ожидающих заданий. Поллинг этого списка —
// страховка на случай, если push-уведомление о новом задании не дошло.
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
	tasks, err := h.service.ListWaiting(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.CourierTasksResponse{
		Tasks: make([]dto.CourierTaskResponse, 0, len(tasks)),
	}
	for i := range tasks {
		response.Tasks = append(response.Tasks, dto.FromTask(&tasks[i]))
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
