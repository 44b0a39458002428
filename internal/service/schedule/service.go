package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// Service генератор слотов расписания мастерской
// Держит провалидированную конфигурацию рабочих часов (неизменяемую после старта)
// и календарь праздников
type Service struct {
	hours    domain.BusinessHours
	holidays HolidayCalendar
	logger   Logger
}

// NewService создает сервис расписания
// Возвращает ошибку, если конфигурация рабочих часов некорректна:
// с невалидным расписанием сервис не должен подниматься (fail closed)
func NewService(hours domain.BusinessHours, holidays HolidayCalendar, logger Logger) (*Service, error) {
	if err := hours.Validate(); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	return &Service{
		hours:    hours,
		holidays: holidays,
		logger:   logger,
	}, nil
}

// Hours возвращает конфигурацию рабочих часов
func (s *Service) Hours() domain.BusinessHours {
	return s.hours
}

// SlotStepMinutes возвращает шаг слотов в минутах
func (s *Service) SlotStepMinutes() int {
	return s.hours.SlotStepMinutes
}

// CandidateSlots возвращает упорядоченный список стартовых времён слотов на дату
// Пусто для воскресений и праздников. Внутри каждой смены слоты идут с шагом
// SlotStepMinutes, часы из ExcludedHours пропускаются. Смены не пересекаются
// (контракт конфигурации), поэтому результат строго возрастает
func (s *Service) CandidateSlots(date time.Time) []types.TimeString {
	class := domain.WeekdayClassOf(date)
	if class == domain.ClassSunday {
		return []types.TimeString{}
	}

	if s.holidays.IsHoliday(date) {
		return []types.TimeString{}
	}

	shifts := s.hours.ShiftsFor(class)
	slots := make([]types.TimeString, 0)

	for _, shift := range shifts {
		for hour := shift.StartHour; hour < shift.EndHour; hour++ {
			if shift.IsHourExcluded(hour) {
				continue
			}
			for minute := 0; minute < 60; minute += s.hours.SlotStepMinutes {
				slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
			}
		}
	}

	return slots
}

// IsWorkingDay проверяет, является ли дата рабочим днём мастерской
func (s *Service) IsWorkingDay(date time.Time) bool {
	if domain.WeekdayClassOf(date) == domain.ClassSunday {
		return false
	}
	if s.holidays.IsHoliday(date) {
		return false
	}
	return len(s.hours.ShiftsFor(domain.WeekdayClassOf(date))) > 0
}
