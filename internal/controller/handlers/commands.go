package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Commands</b>\n\n" +
	"For learners:\n" +
	"/book @mentor - Book a session with a mentor\n" +
	"/cancel - Cancel the current booking\n\n" +
	"For mentors:\n" +
	"/becomementor - Become a mentor\n" +
	"/setdays Monday, Wednesday - Days you are available\n" +
	"/setmodality online | in-person | hybrid - How you teach\n" +
	"/setsubjects Algorithms, Calculus - What you teach\n" +
	"/profile - Your availability\n" +
	"/offer @learner - Offer a session to a learner"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	// Регистрируем пользователя
	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)

	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Registration failed. Please try again later.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Hi, %s!\n\n"+
			"This bot lets you book tutoring sessions with peer mentors, "+
			"or offer sessions if you are a mentor yourself.\n\n%s",
		html.EscapeString(registeredUser.DisplayName()),
		helpText,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	draft, err := h.drafts.Get(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to load draft", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Something went wrong. Please try again later.")
		return
	}

	if draft == nil {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Nothing to cancel.")
		return
	}

	if draft.SubmitInProgress(time.Now(), h.submitGuard) {
		h.sendError(ctx, b, update.Message.Chat.ID, "⏳ The request is being sent and can no longer be cancelled.")
		return
	}

	if err := h.drafts.Clear(ctx, telegramID); err != nil {
		h.logger.Error("Failed to clear draft", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Something went wrong. Please try again later.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Cancelled.\n\nUse /help to see available commands.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от шага черновика
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	draft, err := h.drafts.Get(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to load draft", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return
	}

	// Если нет активного диалога, игнорируем
	if draft == nil {
		h.logger.Debug("No active draft, ignoring message",
			zap.Int64("telegram_id", telegramID))
		return
	}

	h.logger.Info("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(draft.State)))

	switch draft.State {
	case state.StateEnterLocation:
		h.handleLocationStep(ctx, b, update, draft)
	case state.StateEnterGroupName:
		h.handleGroupNameStep(ctx, b, update, draft)
	case state.StateEnterMaxParticipants:
		h.handleMaxParticipantsStep(ctx, b, update, draft)
	case state.StateEnterNote:
		h.handleNoteStep(ctx, b, update, draft)
	default:
		h.sendError(ctx, b, update.Message.Chat.ID, "👆 Please use the buttons above, or /cancel.")
	}
}
