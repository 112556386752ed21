package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
)

// DateLayout формат даты в запросе
const DateLayout = "2006-01-02"

// BookingInput сырые данные из диалога записи или предложения
type BookingInput struct {
	Date            time.Time // нулевое значение означает, что дата не выбрана
	TimeLabel       string    // например "2:00 PM"
	Subject         string
	Modality        model.Modality
	Delivery        model.Delivery
	Location        string
	SessionKind     model.SessionKind // пусто = один на один
	GroupName       string
	MaxParticipants *int
	Note            string
}

// BuildRequest проверяет ввод и собирает запрос целиком.
// Проверки идут в фиксированном порядке, возвращается первая ошибка;
// частично заполненный запрос не возвращается никогда.
func BuildRequest(in BookingInput) (model.BookingRequest, error) {
	subject := strings.TrimSpace(in.Subject)
	label := strings.TrimSpace(in.TimeLabel)

	switch {
	case in.Date.IsZero():
		return model.BookingRequest{}, fmt.Errorf("%w: date", ErrMissingRequiredField)
	case label == "":
		return model.BookingRequest{}, fmt.Errorf("%w: time", ErrMissingRequiredField)
	case subject == "":
		return model.BookingRequest{}, fmt.Errorf("%w: subject", ErrMissingRequiredField)
	}

	if err := CheckDelivery(in.Modality, in.Delivery); err != nil {
		return model.BookingRequest{}, err
	}

	location := strings.TrimSpace(in.Location)
	if RequiresLocation(in.Delivery) && location == "" {
		return model.BookingRequest{}, ErrMissingLocation
	}

	kind := in.SessionKind
	if kind == "" {
		kind = model.SessionOneOnOne
	}
	if kind != model.SessionOneOnOne && kind != model.SessionGroup {
		return model.BookingRequest{}, fmt.Errorf("%w: session kind %q", ErrMissingRequiredField, kind)
	}

	if kind == model.SessionGroup && in.MaxParticipants != nil && *in.MaxParticipants < 1 {
		return model.BookingRequest{}, fmt.Errorf("%w: got %d", ErrInvalidParticipantLimit, *in.MaxParticipants)
	}

	canonical, err := DecodeTimeLabel(label)
	if err != nil {
		return model.BookingRequest{}, err
	}

	if !RequiresLocation(in.Delivery) {
		location = model.LocationOnline
	}

	req := model.BookingRequest{
		Date:        in.Date.Format(DateLayout),
		Time:        canonical,
		Subject:     subject,
		Location:    location,
		SessionKind: kind,
		Note:        strings.TrimSpace(in.Note),
	}

	if kind == model.SessionGroup {
		req.GroupName = strings.TrimSpace(in.GroupName)
		if in.MaxParticipants != nil {
			limit := *in.MaxParticipants
			req.MaxParticipants = &limit
		}
	}

	return req, nil
}
