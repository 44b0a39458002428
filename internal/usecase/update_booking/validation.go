package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSlotAvailable проверяет, что startTime входит в множество свободных слотов
// (кандидаты расписания минус занятость остальных бронирований)
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
		if !booking.IsActive() {
			continue
		}

		occupied[booking.StartTime] = struct{}{}

		current := booking.StartTime
		for i := 1; i < booking.SlotCount; i++ {
			next, err := current.AddMinutes(60)
			if err != nil {
				break
			}
			occupied[next] = struct{}{}
			current = next
		}
	}

	return occupied
}
