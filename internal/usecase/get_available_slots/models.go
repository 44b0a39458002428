package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных стартовых времён
type Response struct {
	Date  time.Time
	Slots []types.TimeString // Упорядочены по возрастанию; пусто для закрытых дней
}
