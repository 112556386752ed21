package mentor

import (
	"context"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Mentor Onboarding Handlers
// ========================

// HandleBecomeMentorConfirm делает пользователя ментором
func HandleBecomeMentorConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if _, err := h.UserService.MakeMentor(ctx, hc.TelegramID); err != nil {
			common.HandleError(hc, err, "make mentor")
			return
		}

		text := "🎓 <b>You are now a mentor!</b>\n\n" +
			"Set up your availability so learners can book you:\n" +
			"/setdays Monday, Wednesday\n" +
			"/setmodality online | in-person | hybrid\n" +
			"/setsubjects Algorithms, Calculus\n\n" +
			"Then check it with /profile or send an offer with /offer @learner"
		if err := hc.ShowText(text, nil); err != nil {
			h.Logger.Error("Failed to show onboarding message", zap.Error(err))
		}

		hc.Answer("✅ You are a mentor now!")
	})
}

// HandleBecomeMentorCancel обрабатывает отказ
func HandleBecomeMentorCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)
	if err := hc.ShowText("✅ Cancelled.\n\nYou can become a mentor later with /becomementor", nil); err != nil {
		h.Logger.Error("Failed to show cancel message", zap.Error(err))
	}
	hc.Answer("Cancelled")
}
