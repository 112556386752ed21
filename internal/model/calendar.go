package model

import "time"

// CalendarCell одна ячейка сетки календаря
type CalendarCell struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	IsToday        bool      `json:"is_today"`
	IsSelected     bool      `json:"is_selected"`
	IsAvailable    bool      `json:"is_available"` // всегда false для прошедших дат
	IsPast         bool      `json:"is_past"`
}
