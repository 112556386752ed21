package booking

import (
	"context"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Step Choice Handlers
// ========================
// Каждый обработчик записывает выбор в черновик и переходит к следующему шагу

// HandlePickTime выбор слота времени
func HandlePickTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, []state.UserState{state.StatePickTime}, func(hc *common.HandlerContext) {
		idx, err := keyboard.ParseIndex(callback.Data, keyboard.PickTimePrefix, len(scheduling.TimeSlots))
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse time slot")
			return
		}

		hc.Draft.TimeLabel = scheduling.TimeSlots[idx]
		advance(hc, "time", hc.Draft.TimeLabel)
	})
}

// HandlePickSubject выбор предмета из профиля ментора
func HandlePickSubject(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, []state.UserState{state.StatePickSubject}, func(hc *common.HandlerContext) {
		profile, err := h.BookingService.Profile(ctx, hc.Draft.MentorID)
		if err != nil {
			common.HandleError(hc, err, "load profile")
			return
		}

		idx, err := keyboard.ParseIndex(callback.Data, keyboard.PickSubjectPrefix, len(profile.Subjects))
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse subject")
			return
		}

		hc.Draft.Subject = profile.Subjects[idx]
		advance(hc, "subject", hc.Draft.Subject)
	})
}

// HandlePickDelivery выбор формата: онлайн или очно
func HandlePickDelivery(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, []state.UserState{state.StatePickDelivery}, func(hc *common.HandlerContext) {
		raw, err := keyboard.ParseValue(callback.Data, keyboard.PickDeliveryPrefix)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse delivery")
			return
		}

		profile, err := h.BookingService.Profile(ctx, hc.Draft.MentorID)
		if err != nil {
			common.HandleError(hc, err, "load profile")
			return
		}

		delivery := model.Delivery(raw)
		if err := scheduling.CheckDelivery(profile.Modality, delivery); err != nil {
			common.HandleError(hc, err, "check delivery")
			return
		}

		hc.Draft.Delivery = delivery
		advance(hc, "delivery", raw)
	})
}

// HandlePickKind выбор типа занятия, доступен только в предложении ментора
func HandlePickKind(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithDraft(ctx, b, callback, h, []state.UserState{state.StatePickKind}, func(hc *common.HandlerContext) {
		raw, err := keyboard.ParseValue(callback.Data, keyboard.PickKindPrefix)
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "parse session kind")
			return
		}

		kind := model.SessionKind(raw)
		if kind != model.SessionOneOnOne && kind != model.SessionGroup {
			common.HandleError(hc, common.ErrInvalidFormat, "parse session kind")
			return
		}
		if kind == model.SessionGroup && !hc.Draft.IsOffer() {
			common.HandleError(hc, scheduling.ErrSessionKindDisallowed, "pick session kind")
			return
		}

		hc.Draft.SessionKind = kind
		if kind != model.SessionGroup {
			hc.Draft.GroupName = ""
			hc.Draft.MaxParticipants = nil
		}
		advance(hc, "session_kind", raw)
	})
}

// HandleSkip пропуск необязательного текстового шага
func HandleSkip(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	steps := []state.UserState{state.StateEnterMaxParticipants, state.StateEnterNote}
	common.WithDraft(ctx, b, callback, h, steps, func(hc *common.HandlerContext) {
		switch hc.Draft.State {
		case state.StateEnterMaxParticipants:
			hc.Draft.MaxParticipants = nil
		case state.StateEnterNote:
			hc.Draft.Note = ""
		}
		advance(hc, "skip", string(hc.Draft.State))
	})
}

// advance сохраняет выбор и показывает следующий шаг
func advance(hc *common.HandlerContext, field, value string) {
	profile, err := hc.Handler.BookingService.Profile(hc.Ctx, hc.Draft.MentorID)
	if err != nil {
		common.HandleError(hc, err, "load profile")
		return
	}

	hc.Draft.Advance(profile)
	if err := hc.SaveDraft(); err != nil {
		common.HandleError(hc, err, "save draft")
		return
	}

	hc.Handler.Logger.Info("Draft step completed",
		zap.Int64("telegram_id", hc.TelegramID),
		zap.String("field", field),
		zap.String("value", value),
		zap.String("next_step", string(hc.Draft.State)))

	if err := hc.ShowStep(); err != nil {
		common.HandleError(hc, err, "show step")
		return
	}
	hc.Answer("")
}
