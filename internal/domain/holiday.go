package domain

import "time"

// HolidayOrigin источник праздничной даты
type HolidayOrigin string

const (
	// OriginFixed фиксированная дата - один и тот же день каждый год
	OriginFixed HolidayOrigin = "fixed"

	// OriginMovable переходящая дата - вычисляется по лунному календарю (Computus)
	OriginMovable HolidayOrigin = "movable"
)

// Holiday нерабочий календарный день
// В праздничные дни мастерская закрыта независимо от дня недели
type Holiday struct {
	Date   time.Time
	Name   string
	Origin HolidayOrigin
}
