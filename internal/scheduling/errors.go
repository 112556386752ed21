package scheduling

import "errors"

// Ошибки валидации. Все обнаруживаются синхронно, до любого сетевого вызова.
var (
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrMissingLocation         = errors.New("location is required for in-person sessions")
	ErrInvalidParticipantLimit = errors.New("participant limit must be at least 1")
	ErrInvalidFormat           = errors.New("invalid time format")
	ErrSessionKindDisallowed   = errors.New("session delivery not allowed by modality")
)
