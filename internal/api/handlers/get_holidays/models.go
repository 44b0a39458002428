package get_holidays

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// HolidaysResponse HTTP response model
type HolidaysResponse struct {
	Year     int       `json:"year"`
	Holidays []Holiday `json:"holidays"`
}

// Holiday модель праздничного дня
type Holiday struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

// FromDomainHolidays конвертирует доменные модели в HTTP response
func FromDomainHolidays(year int, holidays []domain.Holiday) *HolidaysResponse {
	result := make([]Holiday, len(holidays))
	for i, h := range holidays {
		result[i] = Holiday{
			Date:   h.Date.Format(domain.DateFormat),
			Name:   h.Name,
			Origin: string(h.Origin),
		}
	}

	return &HolidaysResponse{
		Year:     year,
		Holidays: result,
	}
}
