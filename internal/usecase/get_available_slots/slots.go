package get_available_slots

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// occupiedTimes возвращает множество стартовых времён, занятых бронированиями
// Каждое активное бронирование занимает своё стартовое время; длительные услуги
// дополнительно блокируют следующие (SlotCount-1) целых часов независимо от шага слота
//
// Занятость не проверяется на принадлежность рабочим часам: время за пределами
// смен никогда не попадает в кандидаты, поэтому лишняя отметка безвредна.
// Бронирование у конца смены может "занимать" несуществующий слот - это
// ожидаемое поведение, а не ошибка
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
				// След вышел за пределы суток - отмечать больше нечего
				break
			}
			occupied[next] = struct{}{}
			current = next
		}
	}

	return occupied
}

// subtractOccupied убирает занятые времена из списка кандидатов, сохраняя порядок
func subtractOccupied(candidates []types.TimeString, occupied map[types.TimeString]struct{}) []types.TimeString {
	available := make([]types.TimeString, 0, len(candidates))

	for _, slot := range candidates {
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}
