package formatting

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
)

// FormatDate форматирует дату вида "Wed, Mar 6, 2024"
func FormatDate(t time.Time) string {
	return t.Format("Mon, Jan 2, 2006")
}

// FormatDateLong форматирует дату вида "Wednesday, March 6, 2024"
func FormatDateLong(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatSlot дата и время занятия, время в виде подписи слота
func FormatSlot(date time.Time, timeLabel string) string {
	if timeLabel == "" {
		return FormatDateLong(date)
	}
	return FormatDateLong(date) + " at " + timeLabel
}

// FormatWireTime переводит "14:00" обратно в "2:00 PM", при ошибке возвращает как есть
func FormatWireTime(hhmm string) string {
	label, err := scheduling.EncodeTime(hhmm)
	if err != nil {
		return hhmm
	}
	return label
}
