package model

import "time"

// MentorProfile содержит входные данные движка расписания для ментора
type MentorProfile struct {
	UserID               int64     `json:"user_id"`
	AvailableDays        []string  `json:"available_days"` // названия дней недели, регистр не важен
	Modality             Modality  `json:"modality"`
	Subjects             []string  `json:"subjects"`
	SessionDurationLabel string    `json:"session_duration_label"` // только для отображения
	UpdatedAt            time.Time `json:"updated_at"`
}

// WeekdaySet строит множество доступных дней из профиля
func (p *MentorProfile) WeekdaySet() WeekdaySet {
	return NewWeekdaySet(p.AvailableDays...)
}
