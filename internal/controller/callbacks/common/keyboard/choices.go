package keyboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/go-telegram/bot/models"
)

// Callback data шагов выбора
const (
	PickTimePrefix     = "pick_time:"     // pick_time:3 (индекс в scheduling.TimeSlots)
	PickSubjectPrefix  = "pick_subject:"  // pick_subject:0 (индекс в списке предметов ментора)
	PickDeliveryPrefix = "pick_delivery:" // pick_delivery:in-person
	PickKindPrefix     = "pick_kind:"     // pick_kind:group
)

// TimeSlots клавиатура выбора времени, текущее значение отмечено
func TimeSlots(selected string) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(scheduling.TimeSlots))
	for i, label := range scheduling.TimeSlots {
		text := label
		if label == selected {
			text = "✅ " + label
		}
		buttons = append(buttons, Button(text, PickTimePrefix+strconv.Itoa(i)))
	}

	return NewBuilder().Columns(2, buttons...).AddStepFooter().Build()
}

// Subjects клавиатура выбора предмета
func Subjects(subjects []string, selected string) *models.InlineKeyboardMarkup {
	b := NewBuilder()
	for i, subject := range subjects {
		text := "📚 " + subject
		if subject == selected {
			text = "✅ " + subject
		}
		b.Row(Button(text, PickSubjectPrefix+strconv.Itoa(i)))
	}
	return b.AddStepFooter().Build()
}

// Deliveries показывает только форматы, разрешённые модальностью ментора
func Deliveries(allowed scheduling.AllowedKinds) *models.InlineKeyboardMarkup {
	row := make([]models.InlineKeyboardButton, 0, 2)
	if allowed.Online {
		row = append(row, Button("💻 Online", PickDeliveryPrefix+string(model.DeliveryOnline)))
	}
	if allowed.InPerson {
		row = append(row, Button("🏫 In person", PickDeliveryPrefix+string(model.DeliveryInPerson)))
	}
	return NewBuilder().Row(row...).AddStepFooter().Build()
}

// SessionKinds выбор между индивидуальным и групповым занятием
func SessionKinds() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("👤 One-on-one", PickKindPrefix+string(model.SessionOneOnOne)),
			Button("👥 Group", PickKindPrefix+string(model.SessionGroup)),
		).
		AddStepFooter().
		Build()
}

// SkipOrCancel для необязательного текстового шага
func SkipOrCancel() *models.InlineKeyboardMarkup {
	return NewBuilder().Row(SkipButton(), CancelButton()).Build()
}

// CancelOnly для обязательного текстового шага
func CancelOnly() *models.InlineKeyboardMarkup {
	return NewBuilder().AddCancelButton().Build()
}

// Confirm клавиатура итогового экрана
func Confirm() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(SubmitCancelButtons()...).
		Row(BackToCalendarButton()).
		Build()
}

// ParseIndex извлекает индекс из callback вида prefix:N и проверяет границы
func ParseIndex(data, prefix string, size int) (int, error) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, fmt.Errorf("unexpected callback %q", data)
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse index: %w", err)
	}
	if idx < 0 || idx >= size {
		return 0, fmt.Errorf("index %d out of range", idx)
	}
	return idx, nil
}

// ParseValue значение после префикса
func ParseValue(data, prefix string) (string, error) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok || raw == "" {
		return "", fmt.Errorf("unexpected callback %q", data)
	}
	return raw, nil
}
