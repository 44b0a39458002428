package schedule

import "time"

// HolidayCalendar интерфейс календаря нерабочих дней
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
