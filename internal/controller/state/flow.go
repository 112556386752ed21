package state

import (
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
)

// flowOrder порядок шагов диалога
var flowOrder = []UserState{
	StatePickDate,
	StatePickTime,
	StatePickSubject,
	StatePickDelivery,
	StatePickKind,
	StateEnterGroupName,
	StateEnterMaxParticipants,
	StateEnterLocation,
	StateEnterNote,
	StateConfirm,
}

// NewDraft создаёт черновик, открытый на месяце today.
// Для записи counterpart это ментор, для предложения ученик.
func NewDraft(origin model.Origin, requesterID, counterpartID int64, counterpartTag string, today time.Time) *Draft {
	mentorID := counterpartID
	if origin == model.OriginOffer {
		mentorID = requesterID
	}

	cursor := scheduling.CursorFor(today)
	return &Draft{
		State:          StatePickDate,
		Origin:         origin,
		RequesterID:    requesterID,
		MentorID:       mentorID,
		CounterpartID:  counterpartID,
		CounterpartTag: counterpartTag,
		CursorYear:     cursor.Year,
		CursorMonth:    cursor.Month,
	}
}

// Advance переводит черновик на следующий шаг.
// Шаги, которые не нужны или заполняются без пользователя, пропускаются.
func (d *Draft) Advance(profile *model.MentorProfile) UserState {
	start := 0
	for i, st := range flowOrder {
		if st == d.State {
			start = i + 1
			break
		}
	}

	for _, st := range flowOrder[start:] {
		if d.autoFill(st, profile) {
			continue
		}
		d.State = st
		return st
	}

	d.State = StateConfirm
	return d.State
}

// autoFill возвращает true, если шаг пропускается
func (d *Draft) autoFill(st UserState, profile *model.MentorProfile) bool {
	switch st {
	case StatePickSubject:
		if len(profile.Subjects) == 1 {
			d.Subject = profile.Subjects[0]
			return true
		}
	case StatePickDelivery:
		allowed := scheduling.AllowedKindsFor(profile.Modality)
		if allowed.Online != allowed.InPerson {
			d.Delivery = scheduling.DefaultDelivery(profile.Modality)
			return true
		}
	case StatePickKind:
		// Групповые занятия предлагает только ментор
		if !d.IsOffer() {
			d.SessionKind = model.SessionOneOnOne
			return true
		}
	case StateEnterGroupName, StateEnterMaxParticipants:
		return d.SessionKind != model.SessionGroup
	case StateEnterLocation:
		if !scheduling.RequiresLocation(d.Delivery) {
			d.Location = ""
			return true
		}
	}
	return false
}

// BackToCalendar возвращает диалог к выбору даты, остальные поля сохраняются
func (d *Draft) BackToCalendar() {
	d.State = StatePickDate
}

// Cursor отображаемый месяц
func (d *Draft) Cursor() scheduling.MonthCursor {
	return scheduling.MonthCursor{Year: d.CursorYear, Month: d.CursorMonth}
}

// SetCursor меняет отображаемый месяц
func (d *Draft) SetCursor(c scheduling.MonthCursor) {
	d.CursorYear = c.Year
	d.CursorMonth = c.Month
}

// Date выбранная дата или нулевое время
func (d *Draft) Date() time.Time {
	if d.SelectedDate == "" {
		return time.Time{}
	}
	date, err := time.Parse(scheduling.DateLayout, d.SelectedDate)
	if err != nil {
		return time.Time{}
	}
	return date
}

// SelectDate запоминает дату
func (d *Draft) SelectDate(date time.Time) {
	d.SelectedDate = date.Format(scheduling.DateLayout)
	d.SetCursor(scheduling.CursorFor(date))
}

// Input переводит черновик во входные данные сборщика запроса.
// Модальность подставляет сервис из профиля ментора.
func (d *Draft) Input() scheduling.BookingInput {
	in := scheduling.BookingInput{
		Date:        d.Date(),
		TimeLabel:   d.TimeLabel,
		Subject:     d.Subject,
		Delivery:    d.Delivery,
		Location:    d.Location,
		SessionKind: d.SessionKind,
		GroupName:   d.GroupName,
		Note:        d.Note,
	}
	if d.MaxParticipants != nil {
		limit := *d.MaxParticipants
		in.MaxParticipants = &limit
	}
	return in
}

// Parties участники занятия для отправки
func (d *Draft) Parties() submission.Parties {
	if d.IsOffer() {
		return submission.Parties{MentorID: d.RequesterID, LearnerID: d.CounterpartID}
	}
	return submission.Parties{MentorID: d.CounterpartID, LearnerID: d.RequesterID}
}
