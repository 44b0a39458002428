package get_schedule

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

type ScheduleService interface {
	Hours() domain.BusinessHours
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
