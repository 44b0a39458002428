package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все активные бронирования на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ScheduleService интерфейс генератора слотов расписания
type ScheduleService interface {
	CandidateSlots(date time.Time) []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
