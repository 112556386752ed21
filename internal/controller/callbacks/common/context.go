package common

import (
	"context"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerContext содержит общие данные для обработки callback
// Это избавляет от дублирования кода получения пользователя, сообщения и черновика
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	User       *model.User
	Draft      *state.Draft
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext создаёт новый контекст обработчика
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// LoadUser загружает пользователя в контекст
func (hc *HandlerContext) LoadUser() error {
	user, err := hc.Handler.UserService.GetByTelegramID(hc.Ctx, hc.TelegramID)
	if err != nil {
		return err
	}
	if user == nil {
		return service.ErrUserNotFound
	}
	hc.User = user
	return nil
}

// RequireUser проверяет что пользователь загружен
func (hc *HandlerContext) RequireUser() error {
	if hc.User == nil {
		return hc.LoadUser()
	}
	return nil
}

// RequireMentor проверяет что пользователь является ментором
func (hc *HandlerContext) RequireMentor() error {
	if err := hc.RequireUser(); err != nil {
		return err
	}
	if !hc.User.IsMentor {
		return service.ErrNotAMentor
	}
	return nil
}

// LoadDraft загружает черновик, ErrNoDraft если его нет или он устарел
func (hc *HandlerContext) LoadDraft() error {
	draft, err := hc.Handler.Drafts.Get(hc.Ctx, hc.TelegramID)
	if err != nil {
		return err
	}
	if draft == nil {
		return ErrNoDraft
	}
	hc.Draft = draft
	return nil
}

// SaveDraft сохраняет текущий черновик
func (hc *HandlerContext) SaveDraft() error {
	return hc.Handler.Drafts.Save(hc.Ctx, hc.TelegramID, hc.Draft)
}

// ClearDraft удаляет черновик
func (hc *HandlerContext) ClearDraft() error {
	hc.Draft = nil
	return hc.Handler.Drafts.Clear(hc.Ctx, hc.TelegramID)
}

// Answer отвечает на callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback query с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// ShowStep заменяет сообщение с кнопками экраном текущего шага черновика
func (hc *HandlerContext) ShowStep() error {
	if hc.Message == nil {
		return ErrNoMessage
	}
	return ShowStep(hc.Ctx, hc.Bot, hc.Handler, hc.ChatID, hc.Message, hc.Draft)
}

// ShowText заменяет сообщение с кнопками текстом
func (hc *HandlerContext) ShowText(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}
	return showText(hc.Ctx, hc.Bot, hc.ChatID, hc.Message, text, keyboard)
}
