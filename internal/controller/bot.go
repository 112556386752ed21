package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/handlers"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	profileService *service.ProfileService,
	bookingService *service.BookingService,
	drafts state.Store,
	submitGuard time.Duration,
	logger *zap.Logger,
) *BotController {
	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		userService,
		profileService,
		bookingService,
		drafts,
		submitGuard,
		logger,
	)

	// Callback handler работает с тем же хранилищем черновиков
	callbackHandler := callbacks.NewHandler(
		userService,
		profileService,
		bookingService,
		drafts,
		submitGuard,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Общие команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypePrefix, c.handlers.HandleBook)

	// Команды для менторов
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/becomementor", bot.MatchTypeExact, c.handlers.HandleBecomeMentor)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypeExact, c.handlers.HandleProfile)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/offer", bot.MatchTypePrefix, c.handlers.HandleOffer)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/setdays", bot.MatchTypePrefix, c.handlers.HandleSetDays)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/setmodality", bot.MatchTypePrefix, c.handlers.HandleSetModality)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/setsubjects", bot.MatchTypePrefix, c.handlers.HandleSetSubjects)

	// Обработчик текстовых сообщений (для шагов с вводом текста)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start the bot"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "book", Description: "📅 Book a session: /book @mentor"},
		{Command: "cancel", Description: "✖️ Cancel the current request"},
		{Command: "becomementor", Description: "🎓 Become a mentor"},
		{Command: "offer", Description: "📨 Offer a session: /offer @learner (mentor)"},
		{Command: "setdays", Description: "🗓 Set available days (mentor)"},
		{Command: "setmodality", Description: "🏫 Set online / in-person / hybrid (mentor)"},
		{Command: "setsubjects", Description: "📚 Set subjects (mentor)"},
		{Command: "profile", Description: "👤 My availability (mentor)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
