package common

import (
	"context"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithUser создаёт HandlerContext и загружает пользователя
// При ошибке автоматически отвечает пользователю
func WithUser(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if err := hc.LoadUser(); err != nil {
		h.Logger.Error("Failed to load user",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	handler(hc)
}

// WithDraft загружает черновик и проверяет, что он на одном из ожидаемых шагов.
// Кнопки со старых сообщений после этого ничего не меняют.
func WithDraft(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	steps []state.UserState,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if err := hc.LoadDraft(); err != nil {
		h.Logger.Info("Draft not available",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
		hc.AnswerAlert(ErrorMessage(err))
		return
	}

	if len(steps) > 0 && !containsStep(steps, hc.Draft.State) {
		h.Logger.Info("Callback for inactive step",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("data", callback.Data),
			zap.String("state", string(hc.Draft.State)))
		hc.AnswerAlert(ErrorMessage(ErrWrongStep))
		return
	}

	handler(hc)
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

func containsStep(steps []state.UserState, st state.UserState) bool {
	for _, s := range steps {
		if s == st {
			return true
		}
	}
	return false
}
