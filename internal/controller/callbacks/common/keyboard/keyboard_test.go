package keyboard

import (
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// понедельник
var today = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

func buttonTexts(row []models.InlineKeyboardButton) []string {
	texts := make([]string, 0, len(row))
	for _, b := range row {
		texts = append(texts, b.Text)
	}
	return texts
}

func TestCalendar(t *testing.T) {
	set := model.NewWeekdaySet("Monday", "Wednesday")
	selected := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	grid := scheduling.GenerateGrid(2024, time.March, set, selected, today)

	kb := Calendar(grid, today)
	rows := kb.InlineKeyboard
	// навигация, дни недели, 6 недель, отмена
	require.Len(t, rows, 2+len(grid.Weeks())+1)

	// в текущем месяце кнопки "назад" нет
	assert.Equal(t, []string{"March 2024", "▶️"}, buttonTexts(rows[0]))
	assert.Equal(t, weekdayHeader, buttonTexts(rows[1]))

	// первая неделя: 25 фев ... 2 мар, всё в прошлом
	assert.Equal(t, []string{"·", "·", "·", "·", "·", "·", "·"}, buttonTexts(rows[2]))
	// вторая неделя: 3..9 марта
	assert.Equal(t, []string{"·", "•4", "·", "[6]", "·", "·", "·"}, buttonTexts(rows[3]))
	assert.Equal(t, CalendarDayPrefix+"2024-03-04", rows[3][1].CallbackData)

	last := rows[len(rows)-1]
	assert.Equal(t, FlowCancel, last[0].CallbackData)
}

func TestCalendarButton_AdjacentMonths(t *testing.T) {
	cursor := scheduling.MonthCursor{Year: 2024, Month: time.March}
	prev := model.CalendarCell{Date: time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), IsAvailable: true}
	next := model.CalendarCell{Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), IsAvailable: true}

	assert.Equal(t, "‹26", CalendarButton(prev, cursor).Text)
	assert.Equal(t, "1›", CalendarButton(next, cursor).Text)
}

func TestMonthNavigation(t *testing.T) {
	april := scheduling.MonthCursor{Year: 2024, Month: time.April}
	row := MonthNavigation(april, today)
	require.Len(t, row, 3)
	assert.Equal(t, CalendarNavPrefix+"2024-03", row[0].CallbackData)
	assert.Equal(t, CalendarNavPrefix+"2024-05", row[2].CallbackData)

	far := scheduling.MonthCursor{Year: 2024, Month: time.September}
	row = MonthNavigation(far, today)
	assert.Equal(t, []string{"◀️", "September 2024"}, buttonTexts(row))
}

func TestParseNavAndDay(t *testing.T) {
	cursor, err := ParseNav("cal_nav:2025-01")
	require.NoError(t, err)
	assert.Equal(t, scheduling.MonthCursor{Year: 2025, Month: time.January}, cursor)
	assert.Equal(t, "cal_nav:2025-01", NavData(cursor))

	_, err = ParseNav("cal_nav:2025-13")
	assert.Error(t, err)
	_, err = ParseNav("cal_day:2025-01-01")
	assert.Error(t, err)

	day, err := ParseDay("cal_day:2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("cal_day:2023-02-29")
	assert.Error(t, err)
}

func TestIsNavigable(t *testing.T) {
	assert.True(t, IsNavigable(scheduling.MonthCursor{Year: 2024, Month: time.March}, today))
	assert.True(t, IsNavigable(scheduling.MonthCursor{Year: 2024, Month: time.September}, today))
	assert.False(t, IsNavigable(scheduling.MonthCursor{Year: 2024, Month: time.October}, today))
	assert.False(t, IsNavigable(scheduling.MonthCursor{Year: 2024, Month: time.February}, today))
}

func TestTimeSlots(t *testing.T) {
	kb := TimeSlots("9:00 AM")
	// 10 слотов по 2 в ряд и footer
	require.Len(t, kb.InlineKeyboard, 6)
	assert.Equal(t, []string{"8:00 AM", "✅ 9:00 AM"}, buttonTexts(kb.InlineKeyboard[0]))
	assert.Equal(t, PickTimePrefix+"9", kb.InlineKeyboard[4][1].CallbackData)
}

func TestDeliveries(t *testing.T) {
	kb := Deliveries(scheduling.AllowedKindsFor(model.ModalityOnline))
	require.Len(t, kb.InlineKeyboard[0], 1)
	assert.Equal(t, PickDeliveryPrefix+"online", kb.InlineKeyboard[0][0].CallbackData)

	kb = Deliveries(scheduling.AllowedKindsFor(model.ModalityHybrid))
	assert.Len(t, kb.InlineKeyboard[0], 2)
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("pick_time:3", PickTimePrefix, len(scheduling.TimeSlots))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = ParseIndex("pick_time:10", PickTimePrefix, len(scheduling.TimeSlots))
	assert.Error(t, err)
	_, err = ParseIndex("pick_time:x", PickTimePrefix, len(scheduling.TimeSlots))
	assert.Error(t, err)

	v, err := ParseValue("pick_kind:group", PickKindPrefix)
	require.NoError(t, err)
	assert.Equal(t, "group", v)
	_, err = ParseValue("pick_kind:", PickKindPrefix)
	assert.Error(t, err)
}

func TestColumns(t *testing.T) {
	kb := NewBuilder().Columns(3, Noop("a"), Noop("b"), Noop("c"), Noop("d")).Build()
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
}
