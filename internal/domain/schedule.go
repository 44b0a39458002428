package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrInvalidSchedule возвращается при некорректной конфигурации рабочих часов
	// Сервис обязан отказаться обслуживать запросы с такой конфигурацией (fail closed)
	ErrInvalidSchedule = errors.New("domain: invalid business hours configuration")
)

// WeekdayClass категория рабочего дня
// Воскресенье всегда выходной независимо от конфигурации
type WeekdayClass int

const (
	ClassRegular WeekdayClass = iota // Пн-Пт
	ClassSaturday
	ClassSunday
)

// String возвращает строковое представление категории дня
func (c WeekdayClass) String() string {
	switch c {
	case ClassRegular:
		return "regular"
	case ClassSaturday:
		return "saturday"
	case ClassSunday:
		return "sunday"
	default:
		return "unknown"
	}
}

// WeekdayClassOf определяет категорию дня по дате
func WeekdayClassOf(date time.Time) WeekdayClass {
	switch date.Weekday() {
	case time.Sunday:
		return ClassSunday
	case time.Saturday:
		return ClassSaturday
	default:
		return ClassRegular
	}
}

// Shift непрерывное рабочее окно внутри дня (например, утро или вечер)
// Часы из ExcludedHours пропускаются при генерации слотов
type Shift struct {
	StartHour     int
	EndHour       int // не включается
	ExcludedHours []int
}

// IsHourExcluded проверяет, исключён ли час из смены
func (s Shift) IsHourExcluded(hour int) bool {
	for _, h := range s.ExcludedHours {
		if h == hour {
			return true
		}
	}
	return false
}

// Validate проверяет корректность смены
func (s Shift) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("%w: shift start hour %d is out of range", ErrInvalidSchedule, s.StartHour)
	}
	if s.EndHour < 1 || s.EndHour > 24 {
		return fmt.Errorf("%w: shift end hour %d is out of range", ErrInvalidSchedule, s.EndHour)
	}
	if s.StartHour >= s.EndHour {
		return fmt.Errorf("%w: shift start hour %d must be before end hour %d", ErrInvalidSchedule, s.StartHour, s.EndHour)
	}
	for _, h := range s.ExcludedHours {
		if h < s.StartHour || h >= s.EndHour {
			return fmt.Errorf("%w: excluded hour %d is outside shift [%d, %d)", ErrInvalidSchedule, h, s.StartHour, s.EndHour)
		}
	}
	return nil
}

// BusinessHours расписание работы мастерской
// Загружается один раз при старте процесса и не изменяется в рантайме
type BusinessHours struct {
	WeekdayShifts   []Shift // Пн-Пт
	SaturdayShifts  []Shift
	SlotStepMinutes int
}

// ShiftsFor возвращает смены для категории дня
// Для воскресенья всегда пусто - это правило, а не конфигурация
func (b *BusinessHours) ShiftsFor(class WeekdayClass) []Shift {
	switch class {
	case ClassRegular:
		return b.WeekdayShifts
	case ClassSaturday:
		return b.SaturdayShifts
	default:
		return nil
	}
}

// Validate проверяет конфигурацию рабочих часов
// Правила: start < end, исключённые часы внутри смены, смены упорядочены и не пересекаются,
// шаг слота положительный и делит час нацело
func (b *BusinessHours) Validate() error {
	if b.SlotStepMinutes < MinSlotStepMinutes || b.SlotStepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("%w: slot step %d minutes is out of range [%d, %d]",
			ErrInvalidSchedule, b.SlotStepMinutes, MinSlotStepMinutes, MaxSlotStepMinutes)
	}
	if 60%b.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: slot step %d minutes must divide an hour evenly", ErrInvalidSchedule, b.SlotStepMinutes)
	}

	if err := validateShifts("weekday", b.WeekdayShifts); err != nil {
		return err
	}
	if err := validateShifts("saturday", b.SaturdayShifts); err != nil {
		return err
	}

	return nil
}

// validateShifts валидирует список смен одной категории дня
func validateShifts(class string, shifts []Shift) error {
	for _, shift := range shifts {
		if err := shift.Validate(); err != nil {
			return fmt.Errorf("%s: %w", class, err)
		}
	}

	if !sort.SliceIsSorted(shifts, func(i, j int) bool {
		return shifts[i].StartHour < shifts[j].StartHour
	}) {
		return fmt.Errorf("%w: %s shifts must be ordered by start hour", ErrInvalidSchedule, class)
	}

	for i := 1; i < len(shifts); i++ {
		if shifts[i].StartHour < shifts[i-1].EndHour {
			return fmt.Errorf("%w: %s shifts [%d, %d) and [%d, %d) overlap",
				ErrInvalidSchedule, class,
				shifts[i-1].StartHour, shifts[i-1].EndHour,
				shifts[i].StartHour, shifts[i].EndHour)
		}
	}

	return nil
}
