package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleSubmit собирает запрос из черновика и отправляет его
func HandleSubmit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, []state.UserState{state.StateConfirm}, func(hc *common.HandlerContext) {
		now := time.Now()
		if hc.Draft.SubmitInProgress(now, h.SubmitGuard) {
			hc.Answer("⏳ Already sending...")
			return
		}

		// Право на отправку берётся атомарно в хранилище, два нажатия не отправят запрос дважды
		acquired, err := h.Drafts.AcquireSubmit(ctx, hc.TelegramID, h.SubmitGuard)
		if err != nil {
			common.HandleError(hc, err, "acquire submit guard")
			return
		}
		if !acquired {
			hc.Answer("⏳ Already sending...")
			return
		}
		defer func() {
			if err := h.Drafts.ReleaseSubmit(ctx, hc.TelegramID); err != nil {
				h.Logger.Error("Failed to release submit guard",
					zap.Int64("telegram_id", hc.TelegramID),
					zap.Error(err))
			}
		}()

		hc.Draft.StartSubmit(now)
		if err := hc.SaveDraft(); err != nil {
			common.HandleError(hc, err, "save draft")
			return
		}

		receipt, err := h.BookingService.Submit(ctx, hc.Draft.Origin, hc.Draft.Parties(), hc.Draft.Input())
		if err != nil {
			hc.Draft.FinishSubmit()

			// Дата могла стать прошедшей, пока черновик ждал
			if errors.Is(err, service.ErrDateUnavailable) {
				hc.Draft.BackToCalendar()
			}
			if saveErr := hc.SaveDraft(); saveErr != nil {
				h.Logger.Error("Failed to reset submitting flag",
					zap.Int64("telegram_id", hc.TelegramID),
					zap.Error(saveErr))
			}
			if hc.Draft.State == state.StatePickDate {
				if showErr := hc.ShowStep(); showErr != nil {
					h.Logger.Error("Failed to show calendar", zap.Error(showErr))
				}
			}
			common.HandleError(hc, err, "submit request")
			return
		}

		text := formatting.ReceiptSummary(hc.Draft, receipt)
		if err := hc.ClearDraft(); err != nil {
			h.Logger.Error("Failed to clear draft",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
		}

		if err := hc.ShowText(text, nil); err != nil {
			h.Logger.Error("Failed to show receipt", zap.Error(err))
		}
		hc.Answer("✅ Sent")
	})
}

// HandleCancel отменяет диалог и удаляет черновик
func HandleCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, nil, func(hc *common.HandlerContext) {
		if hc.Draft.SubmitInProgress(time.Now(), h.SubmitGuard) {
			hc.AnswerAlert("⏳ The request is being sent and can no longer be cancelled")
			return
		}

		if err := hc.ClearDraft(); err != nil {
			common.HandleError(hc, err, "clear draft")
			return
		}

		h.Logger.Info("Draft cancelled", zap.Int64("telegram_id", hc.TelegramID))

		if err := hc.ShowText("✅ Cancelled.\n\nStart again with /book or /offer.", nil); err != nil {
			h.Logger.Error("Failed to show cancel message", zap.Error(err))
		}
		hc.Answer("Cancelled")
	})
}
