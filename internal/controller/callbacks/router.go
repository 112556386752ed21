package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/booking"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/mentor"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================
// Данные шагов диалога описаны в пакете keyboard рядом с кнопками

// Mentor callbacks
const (
	BecomeMentor       = "become_mentor"
	CancelBecomeMentor = "cancel_become_mentor"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	case data == keyboard.NoopData:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Mentor onboarding =====
	case data == BecomeMentor:
		mentor.HandleBecomeMentorConfirm(ctx, b, callback, h)
	case data == CancelBecomeMentor:
		mentor.HandleBecomeMentorCancel(ctx, b, callback, h)

	// ===== Calendar =====
	case strings.HasPrefix(data, keyboard.CalendarDayPrefix):
		booking.HandleCalendarDay(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.CalendarNavPrefix):
		booking.HandleCalendarNav(ctx, b, callback, h)
	case data == keyboard.FlowCalendar:
		booking.HandleBackToCalendar(ctx, b, callback, h)

	// ===== Step choices =====
	case strings.HasPrefix(data, keyboard.PickTimePrefix):
		booking.HandlePickTime(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.PickSubjectPrefix):
		booking.HandlePickSubject(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.PickDeliveryPrefix):
		booking.HandlePickDelivery(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.PickKindPrefix):
		booking.HandlePickKind(ctx, b, callback, h)
	case data == keyboard.FlowSkip:
		booking.HandleSkip(ctx, b, callback, h)

	// ===== Submit / cancel =====
	case data == keyboard.FlowSubmit:
		booking.HandleSubmit(ctx, b, callback, h)
	case data == keyboard.FlowCancel:
		booking.HandleCancel(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "⚠️ Unknown action")
	}
}
