package handlers

import (
	"context"
	"errors"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBecomeMentor обрабатывает команду /becomementor
func (h *Handlers) HandleBecomeMentor(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	if user.IsMentor {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ You are already a mentor!\n\nSee your availability with /profile")
		return
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("✅ Yes, become a mentor", callbacks.BecomeMentor)).
		Row(keyboard.Button("❌ Cancel", callbacks.CancelBecomeMentor)).
		Build()

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🎓 <b>Become a mentor</b>\n\n"+
			"As a mentor you can:\n"+
			"• Publish the days you are available\n"+
			"• Receive session requests from learners\n"+
			"• Offer one-on-one and group sessions\n\n"+
			"You can still book sessions with other mentors.\n\n"+
			"Continue?",
		kb,
	)
}

// HandleSetDays обрабатывает /setdays Monday, Wednesday
func (h *Handlers) HandleSetDays(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireMentor(ctx, b, update)
	if !ok {
		return
	}

	names := splitWords(commandArgs(update.Message.Text))
	if len(names) == 0 {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ List your days, for example:\n/setdays Monday, Wednesday, Friday")
		return
	}

	profile, err := h.profileService.SetAvailableDays(ctx, user.ID, names)
	h.replyProfile(ctx, b, update, profile, err, "set available days")
}

// HandleSetModality обрабатывает /setmodality hybrid
func (h *Handlers) HandleSetModality(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireMentor(ctx, b, update)
	if !ok {
		return
	}

	raw := commandArgs(update.Message.Text)
	if _, err := model.ParseModality(raw); err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Choose one of: online, in-person, hybrid\n\nExample: /setmodality hybrid")
		return
	}

	profile, err := h.profileService.SetModality(ctx, user.ID, raw)
	h.replyProfile(ctx, b, update, profile, err, "set modality")
}

// HandleSetSubjects обрабатывает /setsubjects Algorithms, Calculus
func (h *Handlers) HandleSetSubjects(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireMentor(ctx, b, update)
	if !ok {
		return
	}

	profile, err := h.profileService.SetSubjects(ctx, user.ID, splitList(commandArgs(update.Message.Text)))
	if errors.Is(err, service.ErrNoSubjects) {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ List your subjects, for example:\n/setsubjects Algorithms, Calculus")
		return
	}
	h.replyProfile(ctx, b, update, profile, err, "set subjects")
}

// HandleProfile обрабатывает команду /profile
func (h *Handlers) HandleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireMentor(ctx, b, update)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(ctx, user.ID)
	if errors.Is(err, service.ErrProfileNotFound) {
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"📭 Your availability is not set yet.\n\nStart with /setdays Monday, Wednesday")
		return
	}
	h.replyProfile(ctx, b, update, profile, err, "get profile")
}

func (h *Handlers) replyProfile(ctx context.Context, b *bot.Bot, update *models.Update, profile *model.MentorProfile, err error, operation string) {
	if err != nil {
		h.logger.Error("Profile operation failed",
			zap.String("operation", operation),
			zap.Int64("telegram_id", update.Message.From.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.ProfileSummary(profile))
}
