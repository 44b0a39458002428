package get_holidays

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

type HolidayCalendar interface {
	ForYear(year int) []domain.Holiday
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
