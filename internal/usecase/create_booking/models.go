package create_booking

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента
	ServiceID  int64            // ID услуги из каталога
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	ServiceID  int64
	Date       time.Time
	StartTime  types.TimeString
	SlotCount  int
	Status     string

	// Денормализованные данные
	ServiceName  string
	ServicePrice float64
	CustomerName *string
	VehiclePlate *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
