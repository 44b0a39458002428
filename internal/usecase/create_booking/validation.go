package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSlotAvailable проверяет, что startTime входит в текущее множество свободных слотов:
// кандидаты расписания минус занятость существующих бронирований
// Вызывается в момент коммита (внутри транзакции), а не только при запросе
// доступности - это закрывает гонку между просмотром и подтверждением
func isSlotAvailable(startTime types.TimeString, candidates []types.TimeString, bookings []*domain.Booking) bool {
	occupied := occupiedTimes(bookings)

	for _, slot := range candidates {
		if slot != startTime {
			continue
		}
		_, taken := occupied[slot]
		return !taken
	}

	return false
}

// occupiedTimes возвращает множество стартовых времён, занятых активными бронированиями
// Длительные услуги блокируют следующие (SlotCount-1) целых часов после начала
func occupiedTimes(bookings []*domain.Booking) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{})

	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		occupied[booking.StartTime] = struct{}{}

		current := booking.StartTime
		for i := 1; i < booking.SlotCount; i++ {
			next, err := current.AddMinutes(60)
			if err != nil {
				// Вышли за пределы суток - отмечать больше нечего
				break
			}
			occupied[next] = struct{}{}
			current = next
		}
	}

	return occupied
}
