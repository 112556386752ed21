package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot/models"
)

// Callback data календаря
const (
	CalendarDayPrefix = "cal_day:" // cal_day:2024-03-06
	CalendarNavPrefix = "cal_nav:" // cal_nav:2024-04

	monthLayout = "2006-01"
)

// MaxMonthsAhead насколько далеко вперёд можно листать календарь
const MaxMonthsAhead = 6

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar строит клавиатуру месяца по сетке.
// Недоступные ячейки тоже нажимаются: решение принимает обработчик по свежей сетке.
func Calendar(grid scheduling.Grid, today time.Time) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	b.Row(MonthNavigation(grid.Cursor, today)...)

	header := make([]models.InlineKeyboardButton, 0, len(weekdayHeader))
	for _, name := range weekdayHeader {
		header = append(header, Noop(name))
	}
	b.Row(header...)

	for _, week := range grid.Weeks() {
		row := make([]models.InlineKeyboardButton, 0, len(week))
		for _, cell := range week {
			row = append(row, CalendarButton(cell, grid.Cursor))
		}
		b.Row(row...)
	}

	return b.AddCancelButton().Build()
}

// CalendarButton кнопка одного дня
func CalendarButton(cell model.CalendarCell, cursor scheduling.MonthCursor) models.InlineKeyboardButton {
	day := strconv.Itoa(cell.Date.Day())
	text := day

	switch {
	case !cell.IsAvailable:
		text = "·"
	case cell.IsSelected:
		text = "[" + day + "]"
	case !cell.IsCurrentMonth && cursor.Prev().Contains(cell.Date):
		text = "‹" + day
	case !cell.IsCurrentMonth:
		text = day + "›"
	case cell.IsToday:
		text = "•" + day
	}

	return Button(text, CalendarDayPrefix+cell.Date.Format(scheduling.DateLayout))
}

// MonthNavigation ряд с переключением месяцев.
// Назад нельзя уйти раньше текущего месяца, вперёд дальше MaxMonthsAhead.
func MonthNavigation(cursor scheduling.MonthCursor, today time.Time) []models.InlineKeyboardButton {
	current := scheduling.CursorFor(today)
	row := make([]models.InlineKeyboardButton, 0, 3)

	if prev := cursor.Prev(); !prev.Before(current) {
		row = append(row, Button("◀️", NavData(prev)))
	}
	row = append(row, Noop(fmt.Sprintf("%s %d", cursor.Month, cursor.Year)))
	if next := cursor.Next(); monthsBetween(current, next) <= MaxMonthsAhead {
		row = append(row, Button("▶️", NavData(next)))
	}

	return row
}

// NavData callback перехода на месяц
func NavData(cursor scheduling.MonthCursor) string {
	return CalendarNavPrefix + time.Date(cursor.Year, cursor.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

// ParseNav разбирает cal_nav:YYYY-MM
func ParseNav(data string) (scheduling.MonthCursor, error) {
	raw, ok := strings.CutPrefix(data, CalendarNavPrefix)
	if !ok {
		return scheduling.MonthCursor{}, fmt.Errorf("not a calendar navigation: %q", data)
	}
	t, err := time.Parse(monthLayout, raw)
	if err != nil {
		return scheduling.MonthCursor{}, fmt.Errorf("parse month: %w", err)
	}
	return scheduling.CursorFor(t), nil
}

// ParseDay разбирает cal_day:YYYY-MM-DD
func ParseDay(data string) (time.Time, error) {
	raw, ok := strings.CutPrefix(data, CalendarDayPrefix)
	if !ok {
		return time.Time{}, fmt.Errorf("not a calendar day: %q", data)
	}
	t, err := time.Parse(scheduling.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day: %w", err)
	}
	return t, nil
}

// IsNavigable проверяет, что месяц можно показать
func IsNavigable(cursor scheduling.MonthCursor, today time.Time) bool {
	current := scheduling.CursorFor(today)
	return !cursor.Before(current) && monthsBetween(current, cursor) <= MaxMonthsAhead
}

func monthsBetween(from, to scheduling.MonthCursor) int {
	return (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
}
