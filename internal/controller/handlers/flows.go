package handlers

import (
	"context"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBook обрабатывает /book @mentor - ученик записывается к ментору
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	username := commandArgs(update.Message.Text)
	if username == "" {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Tell me who to book, for example:\n/book @mentor_username")
		return
	}

	mentor, err := h.userService.FindByUsername(ctx, username)
	if err == nil && !mentor.IsMentor {
		err = service.ErrNotAMentor
	}
	if err == nil && mentor.ID == user.ID {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ You cannot book a session with yourself.")
		return
	}
	if err != nil {
		h.failFlow(ctx, b, update, err, "find mentor")
		return
	}

	h.startFlow(ctx, b, update, state.NewDraft(model.OriginBooking, user.ID, mentor.ID, "@"+mentor.Username, h.bookingService.Today()))
}

// HandleOffer обрабатывает /offer @learner - ментор предлагает занятие ученику
func (h *Handlers) HandleOffer(ctx context.Context, b *bot.Bot, update *models.Update) {
	mentor, ok := h.requireMentor(ctx, b, update)
	if !ok {
		return
	}

	username := commandArgs(update.Message.Text)
	if username == "" {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Tell me who the offer is for, for example:\n/offer @learner_username")
		return
	}

	learner, err := h.userService.FindByUsername(ctx, username)
	if err != nil {
		h.failFlow(ctx, b, update, err, "find learner")
		return
	}
	if learner.ID == mentor.ID {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ You cannot offer a session to yourself.")
		return
	}

	h.startFlow(ctx, b, update, state.NewDraft(model.OriginOffer, mentor.ID, learner.ID, "@"+learner.Username, h.bookingService.Today()))
}

// startFlow проверяет профиль ментора, сохраняет черновик и показывает календарь.
// Предыдущий черновик пользователя заменяется.
func (h *Handlers) startFlow(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	telegramID := update.Message.From.ID

	profile, err := h.bookingService.Profile(ctx, draft.MentorID)
	if err == nil && len(profile.Subjects) == 0 {
		err = service.ErrNoSubjects
	}
	if err != nil {
		h.failFlow(ctx, b, update, err, "load mentor profile")
		return
	}

	if current, err := h.drafts.Get(ctx, telegramID); err == nil && current != nil && current.SubmitInProgress(time.Now(), h.submitGuard) {
		h.sendError(ctx, b, update.Message.Chat.ID, "⏳ Your previous request is still being sent. Try again in a moment.")
		return
	}

	if err := h.drafts.Save(ctx, telegramID, draft); err != nil {
		h.failFlow(ctx, b, update, err, "save draft")
		return
	}

	h.logger.Info("Scheduling flow started",
		zap.Int64("telegram_id", telegramID),
		zap.String("origin", string(draft.Origin)),
		zap.Int64("mentor_id", draft.MentorID),
		zap.Int64("counterpart_id", draft.CounterpartID))

	if err := common.ShowStep(ctx, b, h.screens, update.Message.Chat.ID, nil, draft); err != nil {
		h.failFlow(ctx, b, update, err, "show calendar")
	}
}

func (h *Handlers) failFlow(ctx context.Context, b *bot.Bot, update *models.Update, err error, operation string) {
	h.logger.Warn("Scheduling flow failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.Error(err))
	h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
}
