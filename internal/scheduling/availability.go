package scheduling

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
)

// IsAvailable решает, можно ли выбрать дату.
// Прошедшие даты недоступны всегда, сегодняшняя доступна, если её день недели в множестве.
func IsAvailable(date time.Time, set model.WeekdaySet, today time.Time) bool {
	if IsPast(date, today) {
		return false
	}
	return set.Contains(date.Weekday())
}

// IsPast сравнивает только даты, время суток игнорируется
func IsPast(date, today time.Time) bool {
	return normalizeToDay(date).Before(normalizeToDay(today))
}

// IsSameDay проверяет, являются ли две даты одним днём
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// normalizeToDay переносит календарную дату в UTC-полночь, чтобы сравнение не зависело от зоны
func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
