package update_booking

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID  int64            // ID переносимого бронирования
	CustomerID int64            // ID клиента, выполняющего перенос
	Date       time.Time        // Новая дата
	StartTime  types.TimeString // Новое время начала
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID         int64
	CustomerID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
	SlotCount  int
	Status     string
}
