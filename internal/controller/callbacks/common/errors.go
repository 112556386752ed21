package common

import (
	"errors"

	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrNoDraft       = errors.New("no active draft")
	ErrWrongStep     = errors.New("button belongs to another step")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return "❌ User not found. Use /start first"
	case errors.Is(err, service.ErrNotAMentor):
		return "❌ This is only available to mentors"
	case errors.Is(err, service.ErrProfileNotFound):
		return "❌ The mentor has not set up availability yet"
	case errors.Is(err, service.ErrNoSubjects):
		return "❌ The mentor has no subjects yet"
	case errors.Is(err, service.ErrUnknownWeekday):
		return "❌ Unknown weekday. Use English names like Monday"
	case errors.Is(err, service.ErrDateUnavailable):
		return "❌ This date is no longer available. Please pick another one"
	case errors.Is(err, scheduling.ErrMissingRequiredField):
		return "❌ Please choose a date, time and subject"
	case errors.Is(err, scheduling.ErrMissingLocation):
		return "❌ A location is required for in-person sessions"
	case errors.Is(err, scheduling.ErrInvalidParticipantLimit):
		return "❌ Max participants must be at least 1"
	case errors.Is(err, scheduling.ErrInvalidFormat):
		return "❌ Invalid time slot"
	case errors.Is(err, scheduling.ErrSessionKindDisallowed):
		return "❌ This format is not offered by the mentor"
	case errors.Is(err, submission.ErrRejected):
		return "❌ The request was rejected. Please try another slot"
	case errors.Is(err, ErrNoDraft):
		return "⌛ This session has expired. Start again with /book or /offer"
	case errors.Is(err, ErrWrongStep):
		return "⚠️ This button is no longer active"
	case errors.Is(err, ErrNoMessage):
		return "❌ Failed to process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data"
	default:
		return "❌ Something went wrong. Please try again later"
	}
}
