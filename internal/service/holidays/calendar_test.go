package holidays

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalendar_EasterDates(t *testing.T) {
	// Контрольные значения Computus для григорианского календаря
	cases := []struct {
		year   int
		easter time.Time
	}{
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2027, date(2027, time.March, 28)},
	}

	for _, tc := range cases {
		got := easterSunday(tc.year)
		assert.True(t, got.Equal(tc.easter), "year %d: expected %s, got %s",
			tc.year, tc.easter.Format(domain.DateFormat), got.Format(domain.DateFormat))
	}
}

func TestCalendar_MovableHolidays2024(t *testing.T) {
	c := NewCalendar()

	// Пасха 2024 - 31 марта, Страстная пятница - 29 марта
	assert.True(t, c.IsHoliday(date(2024, time.March, 31)))
	assert.True(t, c.IsHoliday(date(2024, time.March, 29)))

	// Суббота между ними - обычный день
	assert.False(t, c.IsHoliday(date(2024, time.March, 30)))
}

func TestCalendar_FixedHolidays(t *testing.T) {
	c := NewCalendar()

	assert.True(t, c.IsHoliday(date(2024, time.January, 1)))
	assert.True(t, c.IsHoliday(date(2024, time.May, 1)))
	assert.True(t, c.IsHoliday(date(2024, time.September, 7)))
	assert.True(t, c.IsHoliday(date(2024, time.December, 25)))

	assert.False(t, c.IsHoliday(date(2024, time.March, 15)))
	assert.False(t, c.IsHoliday(date(2024, time.August, 8)))
}

func TestCalendar_ForYearDeterministic(t *testing.T) {
	c := NewCalendar()

	first := c.ForYear(2024)
	second := c.ForYear(2024)

	require.Equal(t, first, second)

	// Фиксированные праздники плюс две переходящие даты
	assert.Len(t, first, len(fixedHolidays)+2)

	movable := 0
	for _, h := range first {
		if h.Origin == domain.OriginMovable {
			movable++
		}
	}
	assert.Equal(t, 2, movable)
}

func TestCalendar_ConcurrentAccess(t *testing.T) {
	c := NewCalendar()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			holidays := c.ForYear(year)
			assert.NotEmpty(t, holidays)
		}(2020 + i%4)
	}
	wg.Wait()
}
