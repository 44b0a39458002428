package get_holidays

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WorkshopService/internal/api/handlers"
)

const (
	msgMissingYear = "год обязателен"
	msgInvalidYear = "некорректный год"
)

type Handler struct {
	calendar HolidayCalendar
	logger   Logger
}

func NewHandler(calendar HolidayCalendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/holidays
// Query params: year (required)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /holidays - Missing year")
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1583 || year > 9999 {
		h.logger.Warn("GET /holidays - Invalid year: %s", yearStr)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidYear)
		return
	}

	holidays := h.calendar.ForYear(year)

	h.logger.Info("GET /holidays - Holidays retrieved successfully: year=%d, count=%d", year, len(holidays))
	handlers.RespondJSON(w, http.StatusOK, FromDomainHolidays(year, holidays))
}
