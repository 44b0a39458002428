package get_schedule

import (
	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	SlotStepMinutes int     `json:"slotStepMinutes"`
	WeekdayShifts   []Shift `json:"weekdayShifts"`
	SaturdayShifts  []Shift `json:"saturdayShifts"`
	SundayClosed    bool    `json:"sundayClosed"`
}

// Shift модель рабочей смены
type Shift struct {
	StartHour     int   `json:"startHour"`
	EndHour       int   `json:"endHour"`
	ExcludedHours []int `json:"excludedHours,omitempty"`
}

// FromBusinessHours конвертирует конфигурацию рабочих часов в HTTP response
func FromBusinessHours(hours domain.BusinessHours) *ScheduleResponse {
	return &ScheduleResponse{
		SlotStepMinutes: hours.SlotStepMinutes,
		WeekdayShifts:   fromDomainShifts(hours.WeekdayShifts),
		SaturdayShifts:  fromDomainShifts(hours.SaturdayShifts),
		SundayClosed:    true,
	}
}

func fromDomainShifts(shifts []domain.Shift) []Shift {
	result := make([]Shift, len(shifts))
	for i, s := range shifts {
		result[i] = Shift{
			StartHour:     s.StartHour,
			EndHour:       s.EndHour,
			ExcludedHours: s.ExcludedHours,
		}
	}
	return result
}
