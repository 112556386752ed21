package scheduling

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsAvailable(t *testing.T) {
	// 2024-03-04 понедельник
	today := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)
	set := model.NewWeekdaySet("monday", "WEDNESDAY")

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today in set", date(2024, time.March, 4), true},
		{"today earlier in the day", time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC), true},
		{"future wednesday", date(2024, time.March, 6), true},
		{"future tuesday", date(2024, time.March, 5), false},
		{"past monday", date(2024, time.February, 26), false},
		{"past wednesday", date(2024, time.February, 28), false},
		{"next month monday", date(2024, time.April, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.date, set, today))
		})
	}
}

func TestIsAvailable_EmptySet(t *testing.T) {
	today := date(2024, time.March, 4)
	for i := 0; i < 14; i++ {
		assert.False(t, IsAvailable(today.AddDate(0, 0, i), model.WeekdaySet{}, today))
	}
}

func TestIsAvailable_RejectedPastDate(t *testing.T) {
	// суббота, вчера была пятница
	today := date(2024, time.March, 9)
	yesterday := today.AddDate(0, 0, -1)
	set := model.NewWeekdaySet("Friday")

	assert.Equal(t, time.Friday, yesterday.Weekday())
	assert.False(t, IsAvailable(yesterday, set, today))

	grid := GenerateGrid(2024, time.March, set, time.Time{}, today)
	cell, ok := grid.Cell(yesterday)
	assert.True(t, ok)
	assert.True(t, cell.IsPast)
	assert.False(t, cell.IsAvailable)
	assert.Equal(t, SelectionIgnored, Select(grid, yesterday).Action)
}

func TestIsAvailable_Properties(t *testing.T) {
	today := date(2025, time.July, 16)
	set := model.NewWeekdaySet("Tuesday", "Saturday")

	for i := -60; i < 60; i++ {
		d := today.AddDate(0, 0, i)
		got := IsAvailable(d, set, today)
		if d.Before(today) {
			assert.False(t, got, d.Format(DateLayout))
			continue
		}
		want := d.Weekday() == time.Tuesday || d.Weekday() == time.Saturday
		assert.Equal(t, want, got, d.Format(DateLayout))
	}
}

func TestIsPast_IgnoresTimeAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	today := time.Date(2024, time.March, 4, 23, 59, 0, 0, loc)

	assert.False(t, IsPast(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), today))
	assert.True(t, IsPast(time.Date(2024, time.March, 3, 23, 59, 0, 0, loc), today))
}
