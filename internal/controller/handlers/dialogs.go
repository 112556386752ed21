package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleLocationStep обрабатывает ввод места встречи
func (h *Handlers) handleLocationStep(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	location, ok := validateLength(update.Message.Text, LocationMaxLength)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("❌ Location must be 1-%d characters. Try again:", LocationMaxLength))
		return
	}

	draft.Location = location
	h.advanceDraft(ctx, b, update, draft)
}

// handleGroupNameStep обрабатывает ввод названия группы
func (h *Handlers) handleGroupNameStep(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	name, ok := validateLength(update.Message.Text, GroupNameMaxLength)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("❌ Group name must be 1-%d characters. Try again:", GroupNameMaxLength))
		return
	}

	draft.GroupName = name
	h.advanceDraft(ctx, b, update, draft)
}

// handleMaxParticipantsStep обрабатывает ввод лимита участников
func (h *Handlers) handleMaxParticipantsStep(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	limit, ok := parseParticipantLimit(update.Message.Text)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("❌ Send a whole number up to %d, or press Skip:", MaxGroupParticipants))
		return
	}

	draft.MaxParticipants = &limit
	h.advanceDraft(ctx, b, update, draft)
}

// handleNoteStep обрабатывает ввод заметки
func (h *Handlers) handleNoteStep(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	note, ok := validateLength(update.Message.Text, NoteMaxLength)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			fmt.Sprintf("❌ Note must be 1-%d characters. Try again, or press Skip:", NoteMaxLength))
		return
	}

	draft.Note = note
	h.advanceDraft(ctx, b, update, draft)
}

// advanceDraft переводит черновик на следующий шаг и показывает его новым сообщением
func (h *Handlers) advanceDraft(ctx context.Context, b *bot.Bot, update *models.Update, draft *state.Draft) {
	telegramID := update.Message.From.ID

	profile, err := h.bookingService.Profile(ctx, draft.MentorID)
	if err != nil {
		h.failFlow(ctx, b, update, err, "load mentor profile")
		return
	}

	next := draft.Advance(profile)
	if err := h.drafts.Save(ctx, telegramID, draft); err != nil {
		h.failFlow(ctx, b, update, err, "save draft")
		return
	}

	h.logger.Debug("Draft advanced",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(next)))

	if err := common.ShowStep(ctx, b, h.screens, update.Message.Chat.ID, nil, draft); err != nil {
		h.failFlow(ctx, b, update, err, "show step")
	}
}
