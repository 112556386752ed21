package scheduling

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
)

const daysInWeek = 7

// MonthCursor отображаемый месяц календаря
type MonthCursor struct {
	Year  int
	Month time.Month
}

// CursorFor возвращает курсор месяца, в который попадает дата
func CursorFor(date time.Time) MonthCursor {
	return MonthCursor{Year: date.Year(), Month: date.Month()}
}

// Next следующий месяц
func (c MonthCursor) Next() MonthCursor {
	return CursorFor(c.firstDay().AddDate(0, 1, 0))
}

// Prev предыдущий месяц
func (c MonthCursor) Prev() MonthCursor {
	return CursorFor(c.firstDay().AddDate(0, -1, 0))
}

// Contains проверяет, лежит ли дата в этом месяце
func (c MonthCursor) Contains(date time.Time) bool {
	return date.Year() == c.Year && date.Month() == c.Month
}

// Before проверяет, что месяц курсора раньше месяца other
func (c MonthCursor) Before(other MonthCursor) bool {
	if c.Year != other.Year {
		return c.Year < other.Year
	}
	return c.Month < other.Month
}

func (c MonthCursor) firstDay() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Grid сетка календаря на один месяц, всегда целые недели с воскресенья
type Grid struct {
	Cursor MonthCursor
	Cells  []model.CalendarCell
}

// Weeks режет сетку на строки по 7 дней
func (g Grid) Weeks() [][]model.CalendarCell {
	weeks := make([][]model.CalendarCell, 0, len(g.Cells)/daysInWeek)
	for i := 0; i+daysInWeek <= len(g.Cells); i += daysInWeek {
		weeks = append(weeks, g.Cells[i:i+daysInWeek])
	}
	return weeks
}

// Cell ищет ячейку по дате
func (g Grid) Cell(date time.Time) (model.CalendarCell, bool) {
	for _, cell := range g.Cells {
		if IsSameDay(cell.Date, date) {
			return cell, true
		}
	}
	return model.CalendarCell{}, false
}

// GenerateGrid строит сетку месяца с хвостом предыдущего и началом следующего месяца.
// selected может быть нулевым временем, если дата ещё не выбрана.
func GenerateGrid(year int, month time.Month, set model.WeekdaySet, selected, today time.Time) Grid {
	cursor := CursorFor(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	first := cursor.firstDay()
	last := first.AddDate(0, 1, -1)

	lead := int(first.Weekday())
	trail := daysInWeek - 1 - int(last.Weekday())

	cells := make([]model.CalendarCell, 0, lead+last.Day()+trail)
	start := first.AddDate(0, 0, -lead)
	end := last.AddDate(0, 0, trail)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		current := cursor.Contains(date)
		cells = append(cells, model.CalendarCell{
			Date:           date,
			IsCurrentMonth: current,
			IsToday:        IsSameDay(date, today),
			IsSelected:     current && !selected.IsZero() && IsSameDay(date, selected),
			IsAvailable:    IsAvailable(date, set, today),
			IsPast:         IsPast(date, today),
		})
	}

	return Grid{Cursor: cursor, Cells: cells}
}

// SelectionAction результат нажатия на ячейку
type SelectionAction int

const (
	SelectionIgnored SelectionAction = iota // недоступная ячейка, ничего не меняется
	SelectionNavigate                       // ячейка соседнего месяца: переход к её месяцу
	SelectionSelect                         // ячейка текущего месяца: дата выбрана
)

// Selection результат Select: новый курсор и, при выборе, дата
type Selection struct {
	Action SelectionAction
	Cursor MonthCursor
	Date   time.Time
}

// Select применяет правило выбора к дате из сетки.
// Ячейки соседних месяцев работают как переход к месяцу, а не как выбор.
func Select(grid Grid, date time.Time) Selection {
	cell, ok := grid.Cell(date)
	if !ok || !cell.IsAvailable {
		return Selection{Action: SelectionIgnored, Cursor: grid.Cursor}
	}
	if !cell.IsCurrentMonth {
		return Selection{Action: SelectionNavigate, Cursor: CursorFor(cell.Date)}
	}
	return Selection{Action: SelectionSelect, Cursor: grid.Cursor, Date: cell.Date}
}
