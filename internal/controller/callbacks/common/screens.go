package common

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/calendarimage"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// BuildCalendarScreen формирует экран выбора даты
func BuildCalendarScreen(d *state.Draft, grid scheduling.Grid, profile *model.MentorProfile, today time.Time) (string, *models.InlineKeyboardMarkup) {
	who := "🎓 Mentor: " + html.EscapeString(d.CounterpartTag)
	if d.IsOffer() {
		who = "🎓 Learner: " + html.EscapeString(d.CounterpartTag)
	}

	days := "none"
	if names := profile.WeekdaySet().Names(); len(names) > 0 {
		days = strings.Join(names, ", ")
	}

	text := fmt.Sprintf(
		"📅 <b>Pick a date</b>\n\n"+
			"%s\n"+
			"🗓 Available on: %s\n"+
			"%s\n\n"+
			"Numbers are selectable days, · are unavailable.\n"+
			"‹ and › jump to the neighbouring month.",
		who,
		days,
		formatting.GetModalityDisplay(profile.Modality),
	)

	if date := d.Date(); !date.IsZero() {
		text += "\n\n✅ Selected: " + formatting.FormatDate(date)
	}

	return text, keyboard.Calendar(grid, today)
}

// BuildStepScreen формирует экран шага, кроме календаря
func BuildStepScreen(d *state.Draft, profile *model.MentorProfile) (string, *models.InlineKeyboardMarkup) {
	slot := "📅 " + formatting.FormatSlot(d.Date(), d.TimeLabel)

	switch d.State {
	case state.StatePickTime:
		return slot + "\n\n🕐 <b>Choose a time</b>", keyboard.TimeSlots(d.TimeLabel)

	case state.StatePickSubject:
		return slot + "\n\n📚 <b>Choose a subject</b>", keyboard.Subjects(profile.Subjects, d.Subject)

	case state.StatePickDelivery:
		return slot + "\n\n🧭 <b>Online or in person?</b>",
			keyboard.Deliveries(scheduling.AllowedKindsFor(profile.Modality))

	case state.StatePickKind:
		return slot + "\n\n👥 <b>One-on-one or group session?</b>", keyboard.SessionKinds()

	case state.StateEnterGroupName:
		return slot + "\n\n🏷 Send a name for the group session:", keyboard.CancelOnly()

	case state.StateEnterMaxParticipants:
		return slot + "\n\n🔢 Send the maximum number of participants, or skip for no limit:", keyboard.SkipOrCancel()

	case state.StateEnterLocation:
		return slot + "\n\n📍 Where will the session take place? Send an address or room:", keyboard.CancelOnly()

	case state.StateEnterNote:
		to := "mentor"
		if d.IsOffer() {
			to = "learner"
		}
		return slot + fmt.Sprintf("\n\n💬 Add a note for the %s, or skip:", to), keyboard.SkipOrCancel()

	case state.StateConfirm:
		return formatting.DraftSummary(d) + "\nCheck the details and submit.", keyboard.Confirm()
	}

	return slot, keyboard.NewBuilder().AddCancelButton().Build()
}

// ShowStep показывает экран текущего шага черновика.
// replace заменяемое сообщение, nil чтобы просто отправить новое.
func ShowStep(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, replace *models.Message, d *state.Draft) error {
	if d.State == state.StatePickDate {
		return showCalendar(ctx, b, h, chatID, replace, d)
	}

	profile, err := h.BookingService.Profile(ctx, d.MentorID)
	if err != nil {
		return err
	}

	text, kb := BuildStepScreen(d, profile)
	return showText(ctx, b, chatID, replace, text, kb)
}

// showCalendar отправляет картинку месяца с клавиатурой, при ошибке рендера только текст
func showCalendar(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, replace *models.Message, d *state.Draft) error {
	grid, profile, err := h.BookingService.Calendar(ctx, d.MentorID, d.Cursor(), d.Date())
	if err != nil {
		return err
	}

	text, kb := BuildCalendarScreen(d, grid, profile, h.BookingService.Today())

	imageData, err := calendarimage.Render(grid, "")
	if err != nil {
		h.Logger.Warn("Failed to render calendar image, falling back to text",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return showText(ctx, b, chatID, replace, text, kb)
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: "calendar.png", Data: bytes.NewReader(imageData)},
		Caption:     text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
	if err != nil {
		h.Logger.Warn("Failed to send calendar image, falling back to text",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return showText(ctx, b, chatID, replace, text, kb)
	}

	deleteMessage(ctx, b, replace)
	return nil
}

// showText редактирует текстовое сообщение; фото заменяется новым сообщением
func showText(ctx context.Context, b *bot.Bot, chatID int64, replace *models.Message, text string, kb *models.InlineKeyboardMarkup) error {
	if replace != nil && len(replace.Photo) == 0 {
		params := &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: replace.ID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		}
		if kb != nil {
			params.ReplyMarkup = kb
		}
		_, err := b.EditMessageText(ctx, params)
		if err == nil || IsMessageNotModifiedError(err) {
			return nil
		}
	}

	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		return err
	}

	deleteMessage(ctx, b, replace)
	return nil
}

func deleteMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	if msg == nil {
		return
	}
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})
}
