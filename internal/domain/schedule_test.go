package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayClassOf(t *testing.T) {
	// Неделя 1-7 апреля 2024: понедельник - воскресенье
	assert.Equal(t, ClassRegular, WeekdayClassOf(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ClassRegular, WeekdayClassOf(time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ClassSaturday, WeekdayClassOf(time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ClassSunday, WeekdayClassOf(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC)))
}

func TestShift_Validate(t *testing.T) {
	assert.NoError(t, Shift{StartHour: 9, EndHour: 13}.Validate())
	assert.NoError(t, Shift{StartHour: 9, EndHour: 18, ExcludedHours: []int{12}}.Validate())

	assert.ErrorIs(t, Shift{StartHour: 13, EndHour: 9}.Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, Shift{StartHour: -1, EndHour: 9}.Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, Shift{StartHour: 9, EndHour: 25}.Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, Shift{StartHour: 9, EndHour: 13, ExcludedHours: []int{14}}.Validate(), ErrInvalidSchedule)
}

func TestBusinessHours_Validate(t *testing.T) {
	valid := BusinessHours{
		WeekdayShifts: []Shift{
			{StartHour: 9, EndHour: 13},
			{StartHour: 16, EndHour: 20},
		},
		SaturdayShifts:  []Shift{{StartHour: 9, EndHour: 14}},
		SlotStepMinutes: 60,
	}
	assert.NoError(t, valid.Validate())

	overlapping := BusinessHours{
		WeekdayShifts: []Shift{
			{StartHour: 9, EndHour: 14},
			{StartHour: 13, EndHour: 18},
		},
		SlotStepMinutes: 60,
	}
	assert.ErrorIs(t, overlapping.Validate(), ErrInvalidSchedule)

	unordered := BusinessHours{
		WeekdayShifts: []Shift{
			{StartHour: 16, EndHour: 20},
			{StartHour: 9, EndHour: 13},
		},
		SlotStepMinutes: 60,
	}
	assert.ErrorIs(t, unordered.Validate(), ErrInvalidSchedule)

	badStep := valid
	badStep.SlotStepMinutes = 45
	assert.ErrorIs(t, badStep.Validate(), ErrInvalidSchedule)

	zeroStep := valid
	zeroStep.SlotStepMinutes = 0
	assert.ErrorIs(t, zeroStep.Validate(), ErrInvalidSchedule)
}

func TestBusinessHours_ShiftsForSunday(t *testing.T) {
	hours := BusinessHours{
		WeekdayShifts:   []Shift{{StartHour: 9, EndHour: 13}},
		SaturdayShifts:  []Shift{{StartHour: 9, EndHour: 14}},
		SlotStepMinutes: 60,
	}

	assert.Nil(t, hours.ShiftsFor(ClassSunday))
}

func TestBooking_StatusPredicates(t *testing.T) {
	b := Booking{Status: StatusConfirmed}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())

	b.Status = StatusInProgress
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())

	b.Status = StatusCancelledByCustomer
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())

	b.Status = StatusNoShow
	assert.False(t, b.IsActive())
	assert.False(t, b.IsCancelled())
}
