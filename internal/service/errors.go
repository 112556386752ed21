package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNotAMentor      = errors.New("user is not a mentor")
	ErrProfileNotFound = errors.New("mentor profile not found")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrNoSubjects      = errors.New("at least one subject is required")
	ErrDateUnavailable = errors.New("date is not available")
)
