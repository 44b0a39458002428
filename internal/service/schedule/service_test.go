package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeCalendar struct {
	holidays map[string]bool
}

func (f *fakeCalendar) IsHoliday(date time.Time) bool {
	return f.holidays[date.Format(domain.DateFormat)]
}

func workshopHours() domain.BusinessHours {
	return domain.BusinessHours{
		WeekdayShifts: []domain.Shift{
			{StartHour: 9, EndHour: 13},
			{StartHour: 16, EndHour: 20},
		},
		SaturdayShifts: []domain.Shift{
			{StartHour: 9, EndHour: 14},
		},
		SlotStepMinutes: 60,
	}
}

func newTestService(t *testing.T, hours domain.BusinessHours, holidays map[string]bool) *Service {
	t.Helper()
	svc, err := NewService(hours, &fakeCalendar{holidays: holidays}, noopLogger{})
	require.NoError(t, err)
	return svc
}

func toStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestNewService_InvalidConfig(t *testing.T) {
	// Пересекающиеся смены
	hours := domain.BusinessHours{
		WeekdayShifts: []domain.Shift{
			{StartHour: 9, EndHour: 14},
			{StartHour: 13, EndHour: 18},
		},
		SlotStepMinutes: 60,
	}
	_, err := NewService(hours, &fakeCalendar{}, noopLogger{})
	assert.Error(t, err)

	// Шаг, не делящий час нацело
	hours = workshopHours()
	hours.SlotStepMinutes = 45
	_, err = NewService(hours, &fakeCalendar{}, noopLogger{})
	assert.Error(t, err)
}

func TestCandidateSlots_Weekday(t *testing.T) {
	svc := newTestService(t, workshopHours(), nil)

	// Среда, 3 апреля 2024
	slots := svc.CandidateSlots(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00",
		"16:00", "17:00", "18:00", "19:00",
	}, toStrings(slots))
}

func TestCandidateSlots_Saturday(t *testing.T) {
	svc := newTestService(t, workshopHours(), nil)

	// Суббота, 6 апреля 2024
	slots := svc.CandidateSlots(time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00"}, toStrings(slots))
}

func TestCandidateSlots_SundayAlwaysClosed(t *testing.T) {
	svc := newTestService(t, workshopHours(), nil)

	// Воскресенье, 7 апреля 2024
	slots := svc.CandidateSlots(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, slots)
}

func TestCandidateSlots_Holiday(t *testing.T) {
	svc := newTestService(t, workshopHours(), map[string]bool{"2024-05-01": true})

	slots := svc.CandidateSlots(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, slots)
}

func TestCandidateSlots_ExcludedHours(t *testing.T) {
	hours := domain.BusinessHours{
		WeekdayShifts: []domain.Shift{
			{StartHour: 9, EndHour: 18, ExcludedHours: []int{12, 13}},
		},
		SlotStepMinutes: 60,
	}
	svc := newTestService(t, hours, nil)

	slots := svc.CandidateSlots(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00",
	}, toStrings(slots))
}

func TestCandidateSlots_SubHourStep(t *testing.T) {
	hours := domain.BusinessHours{
		WeekdayShifts:   []domain.Shift{{StartHour: 9, EndHour: 11}},
		SlotStepMinutes: 30,
	}
	svc := newTestService(t, hours, nil)

	slots := svc.CandidateSlots(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, toStrings(slots))
}

func TestIsWorkingDay(t *testing.T) {
	svc := newTestService(t, workshopHours(), map[string]bool{"2024-05-01": true})

	assert.True(t, svc.IsWorkingDay(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, svc.IsWorkingDay(time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, svc.IsWorkingDay(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, svc.IsWorkingDay(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
}
