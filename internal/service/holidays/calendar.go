package holidays

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// fixedHoliday фиксированная праздничная дата (месяц/день одинаковы каждый год)
type fixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

// fixedHolidays государственные, региональные и городские праздники
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.January, 25, "City Anniversary"},
	{time.April, 21, "Tiradentes Day"},
	{time.May, 1, "Labour Day"},
	{time.July, 9, "Constitutionalist Revolution Day"},
	{time.September, 7, "Independence Day"},
	{time.October, 12, "Our Lady of Aparecida"},
	{time.November, 2, "All Souls' Day"},
	{time.November, 15, "Republic Day"},
	{time.November, 20, "Black Awareness Day"},
	{time.December, 25, "Christmas Day"},
}

// Calendar календарь нерабочих дней с кешированием по годам
// Набор праздников - чистая функция года, поэтому кеш никогда не инвалидируется
// Безопасен для конкурентного использования
type Calendar struct {
	mu     sync.RWMutex
	byYear map[int][]domain.Holiday
}

// NewCalendar создает новый календарь праздников
func NewCalendar() *Calendar {
	return &Calendar{
		byYear: make(map[int][]domain.Holiday),
	}
}

// ForYear возвращает все праздники года: фиксированные даты плюс две переходящие
// (Пасха и Страстная пятница, вычисляются по алгоритму Computus)
// Результат кешируется на весь срок жизни процесса
func (c *Calendar) ForYear(year int) []domain.Holiday {
	c.mu.RLock()
	cached, ok := c.byYear[year]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Перепроверяем под write-блокировкой: другой запрос мог успеть первым
	if cached, ok := c.byYear[year]; ok {
		return cached
	}

	computed := computeHolidays(year)
	c.byYear[year] = computed
	return computed
}

// IsHoliday проверяет, является ли дата праздничным днём
func (c *Calendar) IsHoliday(date time.Time) bool {
	y, m, d := date.Date()
	for _, holiday := range c.ForYear(y) {
		hy, hm, hd := holiday.Date.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}

// computeHolidays собирает полный набор праздников года
func computeHolidays(year int) []domain.Holiday {
	holidays := make([]domain.Holiday, 0, len(fixedHolidays)+2)

	for _, f := range fixedHolidays {
		holidays = append(holidays, domain.Holiday{
			Date:   time.Date(year, f.Month, f.Day, 0, 0, 0, 0, time.UTC),
			Name:   f.Name,
			Origin: domain.OriginFixed,
		})
	}

	easter := easterSunday(year)
	goodFriday := easter.AddDate(0, 0, -2)

	holidays = append(holidays,
		domain.Holiday{Date: goodFriday, Name: "Good Friday", Origin: domain.OriginMovable},
		domain.Holiday{Date: easter, Name: "Easter Sunday", Origin: domain.OriginMovable},
	)

	return holidays
}

// easterSunday вычисляет дату Пасхи по григорианскому календарю (алгоритм Computus)
// Только целочисленная арифметика; промежуточные значения a..m соответствуют
// классической записи анонимного григорианского алгоритма
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	// Деление на 31 даёт месяц (3 = март, 4 = апрель), остаток - день
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
