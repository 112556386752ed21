package keyboard

import "github.com/go-telegram/bot/models"

// Callback data общих кнопок диалога
const (
	FlowCancel   = "flow_cancel"
	FlowSubmit   = "flow_submit"
	FlowSkip     = "flow_skip"
	FlowCalendar = "flow_calendar"
)

// CancelButton создаёт кнопку "Cancel"
func CancelButton() models.InlineKeyboardButton {
	return Button("❌ Cancel", FlowCancel)
}

// SkipButton пропуск необязательного шага
func SkipButton() models.InlineKeyboardButton {
	return Button("⏭ Skip", FlowSkip)
}

// BackToCalendarButton возвращает к выбору даты
func BackToCalendarButton() models.InlineKeyboardButton {
	return Button("📅 Change date", FlowCalendar)
}

// SubmitCancelButtons ряд с кнопками отправки и отмены
func SubmitCancelButtons() []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button("✅ Submit", FlowSubmit),
		CancelButton(),
	}
}

// AddCancelButton добавляет кнопку отмены к builder
func (b *Builder) AddCancelButton() *Builder {
	return b.Row(CancelButton())
}

// AddStepFooter нижний ряд шага: смена даты и отмена
func (b *Builder) AddStepFooter() *Builder {
	return b.Row(BackToCalendarButton(), CancelButton())
}
