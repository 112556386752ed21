package booking

import (
	"context"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Calendar Handlers
// ========================

var calendarSteps = []state.UserState{state.StatePickDate}

// HandleCalendarDay обрабатывает нажатие на день.
// Сетка строится заново по профилю ментора, данным из кнопки не доверяем.
func HandleCalendarDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, calendarSteps, func(hc *common.HandlerContext) {
		date, err := keyboard.ParseDay(callback.Data)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse calendar day")
			return
		}

		grid, profile, err := h.BookingService.Calendar(ctx, hc.Draft.MentorID, hc.Draft.Cursor(), hc.Draft.Date())
		if err != nil {
			common.HandleError(hc, err, "build calendar")
			return
		}

		sel := scheduling.Select(grid, date)
		switch sel.Action {
		case scheduling.SelectionIgnored:
			hc.Answer("This day is not available")
			return

		case scheduling.SelectionNavigate:
			if !keyboard.IsNavigable(sel.Cursor, h.BookingService.Today()) {
				hc.Answer("This month is out of range")
				return
			}
			hc.Draft.SetCursor(sel.Cursor)

		case scheduling.SelectionSelect:
			hc.Draft.SelectDate(sel.Date)
			hc.Draft.Advance(profile)
			h.Logger.Info("Date selected",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.String("date", hc.Draft.SelectedDate),
				zap.String("next_step", string(hc.Draft.State)))
		}

		if err := hc.SaveDraft(); err != nil {
			common.HandleError(hc, err, "save draft")
			return
		}
		if err := hc.ShowStep(); err != nil {
			common.HandleError(hc, err, "show step")
			return
		}
		hc.Answer("")
	})
}

// HandleCalendarNav переключает месяц
func HandleCalendarNav(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, calendarSteps, func(hc *common.HandlerContext) {
		cursor, err := keyboard.ParseNav(callback.Data)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse calendar month")
			return
		}

		if !keyboard.IsNavigable(cursor, h.BookingService.Today()) {
			hc.Answer("This month is out of range")
			return
		}

		hc.Draft.SetCursor(cursor)
		if err := hc.SaveDraft(); err != nil {
			common.HandleError(hc, err, "save draft")
			return
		}
		if err := hc.ShowStep(); err != nil {
			common.HandleError(hc, err, "show calendar")
			return
		}
		hc.Answer("")
	})
}

// HandleBackToCalendar возвращает к выбору даты с любого шага
func HandleBackToCalendar(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, nil, func(hc *common.HandlerContext) {
		if hc.Draft.SubmitInProgress(time.Now(), h.SubmitGuard) {
			hc.AnswerAlert("⏳ The request is being sent")
			return
		}

		hc.Draft.BackToCalendar()
		if date := hc.Draft.Date(); !date.IsZero() {
			hc.Draft.SetCursor(scheduling.CursorFor(date))
		}
		if err := hc.SaveDraft(); err != nil {
			common.HandleError(hc, err, "save draft")
			return
		}
		if err := hc.ShowStep(); err != nil {
			common.HandleError(hc, err, "show calendar")
			return
		}
		hc.Answer("")
	})
}
