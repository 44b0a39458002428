package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromBusinessHours(h.service.Hours())

	h.logger.Info("GET /schedule - Schedule retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, response)
}
