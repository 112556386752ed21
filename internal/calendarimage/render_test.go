package calendarimage

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	today := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	grid := scheduling.GenerateGrid(2024, time.March, model.NewWeekdaySet("Monday", "Thursday"), today.AddDate(0, 0, 3), today)

	data, err := Render(grid, "")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	weeks := len(grid.Weeks())
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, headerHeight+weekdayRowH+weeks*cellSize+legendHeight, img.Bounds().Dy())
}

func TestRender_EmptyGrid(t *testing.T) {
	_, err := Render(scheduling.Grid{}, "Nothing")
	assert.Error(t, err)
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "February 2025", MonthTitle(scheduling.MonthCursor{Year: 2025, Month: time.February}))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, selectedColor, cellColor(model.CalendarCell{IsSelected: true, IsAvailable: true}))
	assert.Equal(t, pastColor, cellColor(model.CalendarCell{IsPast: true}))
	assert.Equal(t, availableColor, cellColor(model.CalendarCell{IsAvailable: true}))
	assert.Equal(t, unavailableColor, cellColor(model.CalendarCell{}))
}
