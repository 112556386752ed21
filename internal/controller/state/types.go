package state

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
)

// UserState текущий шаг диалога записи/предложения
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Шаги выбора через inline кнопки
	StatePickDate     UserState = "pick_date"
	StatePickTime     UserState = "pick_time"
	StatePickSubject  UserState = "pick_subject"
	StatePickDelivery UserState = "pick_delivery"
	StatePickKind     UserState = "pick_kind"

	// Шаги с текстовым вводом
	StateEnterLocation        UserState = "enter_location"
	StateEnterGroupName       UserState = "enter_group_name"
	StateEnterMaxParticipants UserState = "enter_max_participants"
	StateEnterNote            UserState = "enter_note"

	StateConfirm UserState = "confirm"
)

// Draft черновик запроса, который собирается по шагам.
// Всё, что относится к UI (шаг, флаг отправки), хранится здесь, а не в движке.
type Draft struct {
	State  UserState    `json:"state"`
	Origin model.Origin `json:"origin"`

	RequesterID    int64  `json:"requester_id"`    // кто ведёт диалог
	MentorID       int64  `json:"mentor_id"`       // чьё расписание используется
	CounterpartID  int64  `json:"counterpart_id"`  // ученик для предложения, ментор для записи
	CounterpartTag string `json:"counterpart_tag"` // имя для сообщений

	CursorYear  int        `json:"cursor_year"`
	CursorMonth time.Month `json:"cursor_month"`

	SelectedDate    string            `json:"selected_date,omitempty"` // YYYY-MM-DD
	TimeLabel       string            `json:"time_label,omitempty"`
	Subject         string            `json:"subject,omitempty"`
	Delivery        model.Delivery    `json:"delivery,omitempty"`
	Location        string            `json:"location,omitempty"`
	SessionKind     model.SessionKind `json:"session_kind,omitempty"`
	GroupName       string            `json:"group_name,omitempty"`
	MaxParticipants *int              `json:"max_participants,omitempty"`
	Note            string            `json:"note,omitempty"`

	// Защита от повторной отправки. Флаг без свежей отметки времени считается брошенным.
	Submitting      bool      `json:"submitting"`
	SubmittingSince time.Time `json:"submitting_since,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// IsOffer черновик создан ментором
func (d *Draft) IsOffer() bool {
	return d.Origin == model.OriginOffer
}

// StartSubmit помечает черновик как отправляемый
func (d *Draft) StartSubmit(now time.Time) {
	d.Submitting = true
	d.SubmittingSince = now
}

// FinishSubmit снимает отметку об отправке
func (d *Draft) FinishSubmit() {
	d.Submitting = false
	d.SubmittingSince = time.Time{}
}

// SubmitInProgress true, пока отправка идёт не дольше timeout.
// Если процесс упал посреди отправки, флаг перестаёт действовать сам.
func (d *Draft) SubmitInProgress(now time.Time, timeout time.Duration) bool {
	if !d.Submitting {
		return false
	}
	return now.Sub(d.SubmittingSince) < timeout
}
