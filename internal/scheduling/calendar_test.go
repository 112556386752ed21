package scheduling

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGrid_Layout(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantCells int
		wantLead  int
		wantTrail int
	}{
		// 1 марта 2024 пятница, 31 марта воскресенье
		{"march 2024", 2024, time.March, 42, 5, 6},
		// февраль 2015 начинается в воскресенье и заканчивается в субботу
		{"february 2015", 2015, time.February, 28, 0, 0},
		// 1 сентября 2024 воскресенье, 30 сентября понедельник
		{"september 2024", 2024, time.September, 35, 0, 5},
		// високосный февраль: 1 февраля 2024 четверг
		{"february 2024", 2024, time.February, 35, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := GenerateGrid(tt.year, tt.month, model.WeekdaySet{}, time.Time{}, date(2000, time.January, 1))
			require.Len(t, grid.Cells, tt.wantCells)

			lead := 0
			for _, c := range grid.Cells {
				if c.IsCurrentMonth {
					break
				}
				lead++
			}
			trail := 0
			for i := len(grid.Cells) - 1; i >= 0 && !grid.Cells[i].IsCurrentMonth; i-- {
				trail++
			}

			assert.Equal(t, tt.wantLead, lead)
			assert.Equal(t, tt.wantTrail, trail)
			assert.Equal(t, time.Sunday, grid.Cells[0].Date.Weekday())
			assert.Equal(t, time.Saturday, grid.Cells[len(grid.Cells)-1].Date.Weekday())
			assert.Len(t, grid.Weeks(), tt.wantCells/7)
		})
	}
}

func TestGenerateGrid_Completeness(t *testing.T) {
	today := date(2024, time.June, 15)
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := GenerateGrid(year, month, model.NewWeekdaySet("Monday"), time.Time{}, today)
			require.Zero(t, len(grid.Cells)%7)

			seen := make(map[int]int)
			for i, c := range grid.Cells {
				if i > 0 {
					assert.Equal(t, grid.Cells[i-1].Date.AddDate(0, 0, 1), c.Date, "cells must be consecutive")
				}
				if c.IsCurrentMonth {
					require.Equal(t, month, c.Date.Month())
					seen[c.Date.Day()]++
				} else {
					assert.NotEqual(t, month, c.Date.Month())
				}
			}

			daysInMonth := date(year, month, 1).AddDate(0, 1, -1).Day()
			require.Len(t, seen, daysInMonth)
			for day, count := range seen {
				assert.Equal(t, 1, count, "day %d", day)
			}
		}
	}
}

func TestGenerateGrid_Flags(t *testing.T) {
	// понедельник 4 марта 2024
	today := date(2024, time.March, 4)
	selected := date(2024, time.March, 6)
	set := model.NewWeekdaySet("Monday", "Wednesday")

	grid := GenerateGrid(2024, time.March, set, selected, today)

	for _, c := range grid.Cells {
		assert.Equal(t, IsSameDay(c.Date, today), c.IsToday, c.Date)
		assert.Equal(t, c.Date.Before(today), c.IsPast, c.Date)
		if c.IsPast {
			assert.False(t, c.IsAvailable, c.Date)
		}
		assert.Equal(t, IsAvailable(c.Date, set, today), c.IsAvailable, c.Date)
		assert.Equal(t, IsSameDay(c.Date, selected), c.IsSelected, c.Date)
	}

	cell, ok := grid.Cell(today)
	require.True(t, ok)
	assert.True(t, cell.IsToday)
	assert.True(t, cell.IsAvailable)
	assert.False(t, cell.IsPast)

	// 1 апреля понедельник, попадает в хвост сетки
	next, ok := grid.Cell(date(2024, time.April, 1))
	require.True(t, ok)
	assert.False(t, next.IsCurrentMonth)
	assert.True(t, next.IsAvailable)
}

func TestGenerateGrid_SelectedOnlyInCurrentMonth(t *testing.T) {
	today := date(2024, time.March, 1)
	// 1 апреля попадает в хвост мартовской сетки
	grid := GenerateGrid(2024, time.March, model.NewWeekdaySet("Monday"), date(2024, time.April, 1), today)
	for _, c := range grid.Cells {
		assert.False(t, c.IsSelected, c.Date)
	}
}

func TestSelect(t *testing.T) {
	today := date(2024, time.March, 4)
	set := model.NewWeekdaySet("Monday")
	grid := GenerateGrid(2024, time.March, set, time.Time{}, today)

	t.Run("unavailable cell is a no-op", func(t *testing.T) {
		sel := Select(grid, date(2024, time.March, 5))
		assert.Equal(t, SelectionIgnored, sel.Action)
		assert.Equal(t, grid.Cursor, sel.Cursor)
		assert.True(t, sel.Date.IsZero())
	})

	t.Run("past lead cell is a no-op", func(t *testing.T) {
		sel := Select(grid, date(2024, time.February, 26))
		assert.Equal(t, SelectionIgnored, sel.Action)
	})

	t.Run("date outside grid is a no-op", func(t *testing.T) {
		sel := Select(grid, date(2024, time.May, 6))
		assert.Equal(t, SelectionIgnored, sel.Action)
	})

	t.Run("adjacent month cell navigates", func(t *testing.T) {
		sel := Select(grid, date(2024, time.April, 1))
		assert.Equal(t, SelectionNavigate, sel.Action)
		assert.Equal(t, MonthCursor{Year: 2024, Month: time.April}, sel.Cursor)
		assert.True(t, sel.Date.IsZero())
	})

	t.Run("current month cell selects", func(t *testing.T) {
		sel := Select(grid, date(2024, time.March, 11))
		assert.Equal(t, SelectionSelect, sel.Action)
		assert.Equal(t, grid.Cursor, sel.Cursor)
		assert.True(t, IsSameDay(sel.Date, date(2024, time.March, 11)))
	})
}

func TestMonthCursor(t *testing.T) {
	dec := MonthCursor{Year: 2024, Month: time.December}
	assert.Equal(t, MonthCursor{Year: 2025, Month: time.January}, dec.Next())
	assert.Equal(t, MonthCursor{Year: 2024, Month: time.November}, dec.Prev())
	assert.Equal(t, MonthCursor{Year: 2023, Month: time.December}, MonthCursor{Year: 2024, Month: time.January}.Prev())

	assert.True(t, dec.Contains(date(2024, time.December, 31)))
	assert.False(t, dec.Contains(date(2025, time.December, 31)))

	assert.True(t, dec.Prev().Before(dec))
	assert.False(t, dec.Before(dec))
	assert.True(t, dec.Before(dec.Next()))
}
