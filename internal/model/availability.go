package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet множество дней недели, в которые ментор доступен.
// Пустое множество означает, что ни одна дата не доступна.
type WeekdaySet map[time.Weekday]struct{}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NewWeekdaySet строит множество из английских названий дней (регистр не важен).
// Неизвестные названия пропускаются: они всё равно не совпали бы ни с одной датой.
func NewWeekdaySet(names ...string) WeekdaySet {
	set := make(WeekdaySet, len(names))
	for _, name := range names {
		if wd, ok := ParseWeekday(name); ok {
			set[wd] = struct{}{}
		}
	}
	return set
}

// ParseWeekdayJSON разбирает JSON-массив названий дней, например `["Monday","friday"]`
func ParseWeekdayJSON(raw string) (WeekdaySet, error) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("parse weekday list: %w", err)
	}
	return NewWeekdaySet(names...), nil
}

// ParseWeekday возвращает день недели по английскому названию
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// Contains проверяет, входит ли день недели в множество
func (s WeekdaySet) Contains(wd time.Weekday) bool {
	_, ok := s[wd]
	return ok
}

// Names возвращает названия дней в порядке недели начиная с воскресенья
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if s.Contains(wd) {
			names = append(names, wd.String())
		}
	}
	return names
}

type Modality string

const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in-person"
	ModalityHybrid   Modality = "hybrid" // допускает оба формата
)

// ParseModality разбирает настройку формата занятий
func ParseModality(s string) (Modality, error) {
	switch m := Modality(strings.ToLower(strings.TrimSpace(s))); m {
	case ModalityOnline, ModalityInPerson, ModalityHybrid:
		return m, nil
	default:
		return "", fmt.Errorf("unknown modality %q", s)
	}
}

// Delivery способ проведения конкретного занятия
type Delivery string

const (
	DeliveryOnline   Delivery = "online"
	DeliveryInPerson Delivery = "in-person"
)

type SessionKind string

const (
	SessionOneOnOne SessionKind = "one-on-one"
	SessionGroup    SessionKind = "group"
)
